package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusvoice/internal/domain/issue"
	"campusvoice/internal/infrastructure/persistence/mappers"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/db"
	apperrors "campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

type IssueRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
	logger logger.Interface
}

func NewIssueRepository(gdb *gorm.DB, logger logger.Interface) issue.Repository {
	return &IssueRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewIssueMapper(),
		logger: logger,
	}
}

func (r *IssueRepositoryImpl) Create(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create issue", "issue_id", model.ID, "error", err)
		return fmt.Errorf("failed to create issue: %w", err)
	}
	return nil
}

func (r *IssueRepositoryImpl) GetByID(ctx context.Context, issueID string) (*issue.Issue, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), issueID)
}

func (r *IssueRepositoryImpl) GetByIDForUpdate(ctx context.Context, issueID string) (*issue.Issue, error) {
	return r.get(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), issueID)
}

func (r *IssueRepositoryImpl) get(tx *gorm.DB, issueID string) (*issue.Issue, error) {
	var model models.IssueModel
	if err := tx.Where("id = ?", issueID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("issue not found", issueID)
		}
		r.logger.Errorw("failed to get issue", "issue_id", issueID, "error", err)
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// Update writes every mutable column guarded by the version the aggregate
// was read at, then advances the aggregate's version.
func (r *IssueRepositoryImpl) Update(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	next := model.Version + 1

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.IssueModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]any{
			"status":                  model.Status,
			"priority_score":          model.PriorityScore,
			"support_count":           model.SupportCount,
			"contest_count":           model.ContestCount,
			"contested":               model.Contested,
			"contest_window_end":      model.ContestWindowEnd,
			"revalidation_window_end": model.RevalidationWindowEnd,
			"resolution_summary":      model.ResolutionSummary,
			"resolution_evidence_url": model.ResolutionEvidenceURL,
			"rejection_reason":        model.RejectionReason,
			"resolution_round":        model.ResolutionRound,
			"revalidation_round":      model.RevalidationRound,
			"rewarded":                model.Rewarded,
			"updated_at":              model.UpdatedAt,
			"resolved_at":             model.ResolvedAt,
			"closed_at":               model.ClosedAt,
			"version":                 next,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update issue", "issue_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewStaleStateError(
			"issue was modified concurrently, reload and retry",
			fmt.Sprintf("issue %s at version %d", model.ID, model.Version),
		)
	}

	i.SetVersion(next)
	return nil
}

func (r *IssueRepositoryImpl) List(ctx context.Context, filter issue.Filter) ([]*issue.Issue, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.IssueModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	query = query.Scopes(
		db.WhereIfNotEmpty("department_id", filter.DepartmentID),
		db.WhereIfNotEmpty("creator_id", filter.CreatorID),
	)

	var list []*models.IssueModel
	if err := query.Order("created_at DESC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list issues", "error", err)
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return r.mapper.ToDomainList(list)
}
