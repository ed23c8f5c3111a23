package usecases

import (
	"context"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/issue"
	vo "campusvoice/internal/domain/issue/valueobjects"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

const (
	OutcomePending   = "PENDING"
	OutcomeConfirmed = "CONFIRMED"
	OutcomeRejected  = "REJECTED"
)

type RevalidationVoteUseCase struct {
	issues issue.Repository
	votes  issue.RevalidationVoteRepository
	store  *IssueStore
	scorer *Scorer
	tx     TransactionRunner
	clock  Clock
	logger logger.Interface
}

func NewRevalidationVoteUseCase(
	issues issue.Repository,
	votes issue.RevalidationVoteRepository,
	store *IssueStore,
	scorer *Scorer,
	tx TransactionRunner,
	clock Clock,
	logger logger.Interface,
) *RevalidationVoteUseCase {
	return &RevalidationVoteUseCase{
		issues: issues,
		votes:  votes,
		store:  store,
		scorer: scorer,
		tx:     tx,
		clock:  clock,
		logger: logger,
	}
}

// Execute casts the actor's vote on a re-resolution. The vote that brings
// either side to the threshold settles the round: confirms close the issue
// for good, rejects reopen it and wipe every recorded vote.
func (uc *RevalidationVoteUseCase) Execute(ctx context.Context, actor authorization.Actor, issueID string, req dto.RevalidationVoteRequest) (*dto.VoteResultDTO, error) {
	uc.logger.Infow("executing revalidation vote use case", "issue_id", issueID, "actor_id", actor.ID, "vote", req.Vote)

	if err := actor.Require(authorization.RoleStudent, "vote on revalidations"); err != nil {
		return nil, err
	}
	voteType, err := vo.NewVoteType(req.Vote)
	if err != nil {
		return nil, errors.NewValidationError("vote must be confirm or reject", req.Vote)
	}

	now := uc.clock()
	var (
		result  *issue.Issue
		score   float64
		tally   issue.VoteTally
		outcome issue.RevalidationOutcome
	)
	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		i, err := uc.issues.GetByIDForUpdate(ctx, issueID)
		if err != nil {
			return err
		}
		if err := i.EnsureRevalidationOpen(now); err != nil {
			return err
		}

		voted, err := uc.votes.Exists(ctx, issueID, actor.ID, i.RevalidationRound())
		if err != nil {
			return err
		}
		if voted {
			return errors.NewDuplicateActionError("you already voted on this re-resolution")
		}
		if err := uc.votes.Create(ctx, issue.NewRevalidationVote(i, actor.ID, voteType, now)); err != nil {
			return err
		}

		tally, err = uc.votes.Tally(ctx, issueID, i.RevalidationRound())
		if err != nil {
			return err
		}
		outcome, err = i.ApplyRevalidationTally(actor.ID, tally.Confirms, tally.Rejects, now)
		if err != nil {
			return err
		}

		switch outcome {
		case issue.RevalidationRejected:
			if err := uc.votes.DeleteByIssue(ctx, issueID); err != nil {
				return err
			}
			fallthrough
		case issue.RevalidationConfirmed:
			if err := uc.store.Save(ctx, i); err != nil {
				return err
			}
		}

		score, err = uc.scorer.Score(ctx, i, now)
		result = i
		return err
	})
	if err != nil {
		uc.logger.Warnw("failed to record revalidation vote", "issue_id", issueID, "actor_id", actor.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("revalidation vote recorded",
		"issue_id", issueID,
		"confirms", tally.Confirms,
		"rejects", tally.Rejects,
		"status", result.Status())
	return &dto.VoteResultDTO{
		Issue:    dto.ToIssueDTO(result, score, now),
		Confirms: tally.Confirms,
		Rejects:  tally.Rejects,
		Outcome:  outcomeName(outcome),
	}, nil
}

func outcomeName(o issue.RevalidationOutcome) string {
	switch o {
	case issue.RevalidationConfirmed:
		return OutcomeConfirmed
	case issue.RevalidationRejected:
		return OutcomeRejected
	default:
		return OutcomePending
	}
}
