package usecases

import (
	"context"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/issue"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

type ContestIssueUseCase struct {
	issues   issue.Repository
	contests issue.ContestRepository
	store    *IssueStore
	scorer   *Scorer
	tx       TransactionRunner
	clock    Clock
	logger   logger.Interface
}

func NewContestIssueUseCase(
	issues issue.Repository,
	contests issue.ContestRepository,
	store *IssueStore,
	scorer *Scorer,
	tx TransactionRunner,
	clock Clock,
	logger logger.Interface,
) *ContestIssueUseCase {
	return &ContestIssueUseCase{
		issues:   issues,
		contests: contests,
		store:    store,
		scorer:   scorer,
		tx:       tx,
		clock:    clock,
		logger:   logger,
	}
}

// Execute files the actor's contest against the current resolution or
// rejection. The third contest of a round escalates the issue.
func (uc *ContestIssueUseCase) Execute(ctx context.Context, actor authorization.Actor, issueID string, req dto.ContestIssueRequest) (*dto.ContestResultDTO, error) {
	uc.logger.Infow("executing contest issue use case", "issue_id", issueID, "actor_id", actor.ID)

	if err := actor.Require(authorization.RoleStudent, "contest issues"); err != nil {
		return nil, err
	}

	now := uc.clock()
	var (
		result    *issue.Issue
		score     float64
		escalated bool
	)
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		i, err := uc.issues.GetByIDForUpdate(ctx, issueID)
		if err != nil {
			return err
		}
		if err := i.EnsureContestOpen(now); err != nil {
			return err
		}

		contested, err := uc.contests.Exists(ctx, issueID, actor.ID, i.ResolutionRound())
		if err != nil {
			return err
		}
		if contested {
			return errors.NewDuplicateActionError("you already contested this resolution")
		}

		escalated, err = i.RecordContest(actor.ID, req.Reason, now)
		if err != nil {
			return err
		}
		if err := uc.contests.Create(ctx, issue.NewContest(i, actor.ID, req.Reason, now)); err != nil {
			return err
		}
		if err := uc.store.Save(ctx, i); err != nil {
			return err
		}

		score, err = uc.scorer.Score(ctx, i, now)
		result = i
		return err
	})
	if err != nil {
		uc.logger.Warnw("failed to contest issue", "issue_id", issueID, "actor_id", actor.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("contest recorded",
		"issue_id", issueID,
		"contest_count", result.ContestCount(),
		"escalated", escalated)
	return &dto.ContestResultDTO{Issue: dto.ToIssueDTO(result, score, now), Escalated: escalated}, nil
}
