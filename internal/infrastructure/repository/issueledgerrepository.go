package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusvoice/internal/domain/issue"
	vo "campusvoice/internal/domain/issue/valueobjects"
	"campusvoice/internal/infrastructure/persistence/mappers"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/db"
	apperrors "campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/mapper"
)

// SupportRepositoryImpl stores the support ledger. The unique index on
// (issue_id, user_id) is the final word on duplicates.
type SupportRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
	logger logger.Interface
}

func NewSupportRepository(gdb *gorm.DB, logger logger.Interface) issue.SupportRepository {
	return &SupportRepositoryImpl{db: gdb, mapper: mappers.NewIssueMapper(), logger: logger}
}

func (r *SupportRepositoryImpl) Create(ctx context.Context, s *issue.Support) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.SupportToModel(s)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewDuplicateActionError("you already support this issue")
		}
		r.logger.Errorw("failed to create support", "issue_id", s.IssueID, "user_id", s.UserID, "error", err)
		return fmt.Errorf("failed to create support: %w", err)
	}
	return nil
}

func (r *SupportRepositoryImpl) Exists(ctx context.Context, issueID, userID string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.SupportModel{}).
		Where("issue_id = ? AND user_id = ?", issueID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check support: %w", err)
	}
	return count > 0, nil
}

func (r *SupportRepositoryImpl) ListByIssue(ctx context.Context, issueID string) ([]*issue.Support, error) {
	var list []*models.SupportModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("issue_id = ?", issueID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list supports: %w", err)
	}
	return mapper.MapSlice(list, r.mapper.SupportToDomain), nil
}

func (r *SupportRepositoryImpl) CountByIssue(ctx context.Context, issueID string) (int, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.SupportModel{}).
		Where("issue_id = ?", issueID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count supports: %w", err)
	}
	return int(count), nil
}

type credibilitySumRow struct {
	IssueID string
	Total   int
}

// CredibilitySums joins supports with users so a ranking of many issues
// costs a single query. Supporters without a user row contribute nothing.
func (r *SupportRepositoryImpl) CredibilitySums(ctx context.Context, issueIDs []string) (map[string]int, error) {
	sums := make(map[string]int, len(issueIDs))
	if len(issueIDs) == 0 {
		return sums, nil
	}

	var rows []credibilitySumRow
	err := db.GetTxFromContext(ctx, r.db).
		Table(models.SupportModel{}.TableName()+" AS s").
		Select("s.issue_id AS issue_id, COALESCE(SUM(u.credibility), 0) AS total").
		Joins("LEFT JOIN "+models.UserModel{}.TableName()+" AS u ON u.id = s.user_id").
		Where("s.issue_id IN ?", issueIDs).
		Group("s.issue_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to sum supporter credibility", "issues", len(issueIDs), "error", err)
		return nil, fmt.Errorf("failed to sum supporter credibility: %w", err)
	}

	for _, row := range rows {
		sums[row.IssueID] = row.Total
	}
	return sums, nil
}

type ContestRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
	logger logger.Interface
}

func NewContestRepository(gdb *gorm.DB, logger logger.Interface) issue.ContestRepository {
	return &ContestRepositoryImpl{db: gdb, mapper: mappers.NewIssueMapper(), logger: logger}
}

func (r *ContestRepositoryImpl) Create(ctx context.Context, c *issue.Contest) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ContestToModel(c)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewDuplicateActionError("you already contested this issue")
		}
		r.logger.Errorw("failed to create contest", "issue_id", c.IssueID, "user_id", c.UserID, "error", err)
		return fmt.Errorf("failed to create contest: %w", err)
	}
	return nil
}

func (r *ContestRepositoryImpl) Exists(ctx context.Context, issueID, userID string, round int) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.ContestModel{}).
		Where("issue_id = ? AND user_id = ? AND resolution_round = ?", issueID, userID, round).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check contest: %w", err)
	}
	return count > 0, nil
}

func (r *ContestRepositoryImpl) ListByRound(ctx context.Context, issueID string, round int) ([]*issue.Contest, error) {
	var list []*models.ContestModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("issue_id = ? AND resolution_round = ?", issueID, round).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contests: %w", err)
	}
	return mapper.MapSlice(list, r.mapper.ContestToDomain), nil
}

func (r *ContestRepositoryImpl) CountByRound(ctx context.Context, issueID string, round int) (int, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.ContestModel{}).
		Where("issue_id = ? AND resolution_round = ?", issueID, round).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count contests: %w", err)
	}
	return int(count), nil
}

type RevalidationVoteRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
	logger logger.Interface
}

func NewRevalidationVoteRepository(gdb *gorm.DB, logger logger.Interface) issue.RevalidationVoteRepository {
	return &RevalidationVoteRepositoryImpl{db: gdb, mapper: mappers.NewIssueMapper(), logger: logger}
}

func (r *RevalidationVoteRepositoryImpl) Create(ctx context.Context, v *issue.RevalidationVote) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.VoteToModel(v)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewDuplicateActionError("you already voted on this resolution")
		}
		r.logger.Errorw("failed to create revalidation vote", "issue_id", v.IssueID, "user_id", v.UserID, "error", err)
		return fmt.Errorf("failed to create revalidation vote: %w", err)
	}
	return nil
}

func (r *RevalidationVoteRepositoryImpl) Exists(ctx context.Context, issueID, userID string, round int) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.RevalidationVoteModel{}).
		Where("issue_id = ? AND user_id = ? AND revalidation_round = ?", issueID, userID, round).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check revalidation vote: %w", err)
	}
	return count > 0, nil
}

type voteTallyRow struct {
	VoteType string
	Total    int
}

func (r *RevalidationVoteRepositoryImpl) Tally(ctx context.Context, issueID string, round int) (issue.VoteTally, error) {
	var rows []voteTallyRow
	err := db.GetTxFromContext(ctx, r.db).Model(&models.RevalidationVoteModel{}).
		Select("vote_type, COUNT(*) AS total").
		Where("issue_id = ? AND revalidation_round = ?", issueID, round).
		Group("vote_type").
		Scan(&rows).Error
	if err != nil {
		return issue.VoteTally{}, fmt.Errorf("failed to tally revalidation votes: %w", err)
	}

	var tally issue.VoteTally
	for _, row := range rows {
		switch vo.VoteType(row.VoteType) {
		case vo.VoteConfirm:
			tally.Confirms = row.Total
		case vo.VoteReject:
			tally.Rejects = row.Total
		}
	}
	return tally, nil
}

func (r *RevalidationVoteRepositoryImpl) DeleteByIssue(ctx context.Context, issueID string) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("issue_id = ?", issueID).
		Delete(&models.RevalidationVoteModel{}).Error
	if err != nil {
		r.logger.Errorw("failed to clear revalidation votes", "issue_id", issueID, "error", err)
		return fmt.Errorf("failed to clear revalidation votes: %w", err)
	}
	return nil
}

func (r *RevalidationVoteRepositoryImpl) CountByIssue(ctx context.Context, issueID string) (int, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.RevalidationVoteModel{}).
		Where("issue_id = ?", issueID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count revalidation votes: %w", err)
	}
	return int(count), nil
}
