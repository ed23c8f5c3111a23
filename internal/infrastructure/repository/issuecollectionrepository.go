package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"campusvoice/internal/domain/issue"
	"campusvoice/internal/infrastructure/persistence/mappers"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/biztime"
	"campusvoice/internal/shared/db"
	apperrors "campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/mapper"
)

type TimelineRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
	logger logger.Interface
}

func NewTimelineRepository(gdb *gorm.DB, logger logger.Interface) issue.TimelineRepository {
	return &TimelineRepositoryImpl{db: gdb, mapper: mappers.NewIssueMapper(), logger: logger}
}

// Append inserts entries in order and writes the generated IDs back.
func (r *TimelineRepositoryImpl) Append(ctx context.Context, entries ...*issue.TimelineEvent) error {
	if len(entries) == 0 {
		return nil
	}

	rows, err := mapper.MapSliceWithError(entries, r.mapper.TimelineToModel)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(&rows).Error; err != nil {
		r.logger.Errorw("failed to append timeline", "issue_id", entries[0].IssueID, "error", err)
		return fmt.Errorf("failed to append timeline: %w", err)
	}
	for i, row := range rows {
		entries[i].ID = row.ID
	}
	return nil
}

func (r *TimelineRepositoryImpl) ListByIssue(ctx context.Context, issueID string) ([]*issue.TimelineEvent, error) {
	var list []*models.TimelineEventModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("issue_id = ?", issueID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline: %w", err)
	}
	return mapper.MapSliceWithError(list, r.mapper.TimelineToDomain)
}

type CommentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
	logger logger.Interface
}

func NewCommentRepository(gdb *gorm.DB, logger logger.Interface) issue.CommentRepository {
	return &CommentRepositoryImpl{db: gdb, mapper: mappers.NewIssueMapper(), logger: logger}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, c *issue.Comment) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.CommentToModel(c)).Error; err != nil {
		r.logger.Errorw("failed to create comment", "issue_id", c.IssueID(), "error", err)
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *CommentRepositoryImpl) ListByIssue(ctx context.Context, issueID string) ([]*issue.Comment, error) {
	var list []*models.IssueCommentModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("issue_id = ?", issueID).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return mapper.MapSlice(list, r.mapper.CommentToDomain), nil
}

type ProposalRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
	logger logger.Interface
}

func NewProposalRepository(gdb *gorm.DB, logger logger.Interface) issue.ProposalRepository {
	return &ProposalRepositoryImpl{db: gdb, mapper: mappers.NewIssueMapper(), logger: logger}
}

func (r *ProposalRepositoryImpl) Create(ctx context.Context, p *issue.Proposal) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ProposalToModel(p)).Error; err != nil {
		r.logger.Errorw("failed to create proposal", "issue_id", p.IssueID(), "error", err)
		return fmt.Errorf("failed to create proposal: %w", err)
	}
	return nil
}

func (r *ProposalRepositoryImpl) GetByID(ctx context.Context, proposalID string) (*issue.Proposal, error) {
	var model models.ProposalModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", proposalID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("proposal not found", proposalID)
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return r.mapper.ProposalToDomain(&model), nil
}

func (r *ProposalRepositoryImpl) ListByIssue(ctx context.Context, issueID string) ([]*issue.Proposal, error) {
	var list []*models.ProposalModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("issue_id = ?", issueID).
		Order("vote_count DESC, created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return mapper.MapSlice(list, r.mapper.ProposalToDomain), nil
}

// AddVote must run inside a transaction so the vote row and the counter
// move together.
func (r *ProposalRepositoryImpl) AddVote(ctx context.Context, proposalID, userID string, at time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	vote := &models.ProposalVoteModel{
		ProposalID: proposalID,
		UserID:     userID,
		CreatedAt:  biztime.ToMillis(at),
	}
	if err := tx.Create(vote).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewDuplicateActionError("you already voted for this proposal")
		}
		return fmt.Errorf("failed to record proposal vote: %w", err)
	}

	result := tx.Model(&models.ProposalModel{}).
		Where("id = ?", proposalID).
		Update("vote_count", gorm.Expr("vote_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment proposal votes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("proposal not found", proposalID)
	}
	return nil
}
