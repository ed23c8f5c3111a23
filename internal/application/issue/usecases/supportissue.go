package usecases

import (
	"context"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/issue"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

type SupportIssueUseCase struct {
	issues   issue.Repository
	supports issue.SupportRepository
	store    *IssueStore
	scorer   *Scorer
	tx       TransactionRunner
	clock    Clock
	logger   logger.Interface
}

func NewSupportIssueUseCase(
	issues issue.Repository,
	supports issue.SupportRepository,
	store *IssueStore,
	scorer *Scorer,
	tx TransactionRunner,
	clock Clock,
	logger logger.Interface,
) *SupportIssueUseCase {
	return &SupportIssueUseCase{
		issues:   issues,
		supports: supports,
		store:    store,
		scorer:   scorer,
		tx:       tx,
		clock:    clock,
		logger:   logger,
	}
}

// Execute records the actor's support, bumps the counter and refreshes the
// stored priority score in one transaction. The issue row stays locked
// until commit so concurrent supporters never lose an increment.
func (uc *SupportIssueUseCase) Execute(ctx context.Context, actor authorization.Actor, issueID string) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing support issue use case", "issue_id", issueID, "actor_id", actor.ID)

	if err := actor.Require(authorization.RoleStudent, "support issues"); err != nil {
		return nil, err
	}

	now := uc.clock()
	var (
		result *issue.Issue
		score  float64
	)
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		i, err := uc.issues.GetByIDForUpdate(ctx, issueID)
		if err != nil {
			return err
		}
		if err := i.RecordSupport(actor.ID, now); err != nil {
			return err
		}

		supported, err := uc.supports.Exists(ctx, issueID, actor.ID)
		if err != nil {
			return err
		}
		if supported {
			return errors.NewDuplicateActionError("you already support this issue")
		}
		if err := uc.supports.Create(ctx, issue.NewSupport(issueID, actor.ID, now)); err != nil {
			return err
		}

		score, err = uc.scorer.Score(ctx, i, now)
		if err != nil {
			return err
		}
		i.RefreshPriorityScore(score)

		result = i
		return uc.store.Save(ctx, i)
	})
	if err != nil {
		uc.logger.Warnw("failed to support issue", "issue_id", issueID, "actor_id", actor.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("issue supported", "issue_id", issueID, "support_count", result.SupportCount(), "priority_score", score)
	return dto.ToIssueDTO(result, score, now), nil
}
