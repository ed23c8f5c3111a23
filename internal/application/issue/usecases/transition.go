package usecases

import (
	"context"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/issue"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
)

// adminTransition runs an admin-only lifecycle step: role check, read,
// mutate, versioned save, all in one transaction. A concurrent admin action
// on the same issue makes the save fail with a StaleStateError.
type adminTransition struct {
	issues issue.Repository
	store  *IssueStore
	scorer *Scorer
	tx     TransactionRunner
	clock  Clock
	logger logger.Interface
}

func (t *adminTransition) run(
	ctx context.Context,
	actor authorization.Actor,
	issueID, action string,
	mutate func(ctx context.Context, i *issue.Issue) error,
) (*dto.IssueDTO, error) {
	if err := t.authorize(actor, issueID, action); err != nil {
		return nil, err
	}
	return t.apply(ctx, actor, issueID, action, mutate)
}

// authorize refuses non-admin actors. Use cases that parse request input
// call it first so role failures win over validation failures.
func (t *adminTransition) authorize(actor authorization.Actor, issueID, action string) error {
	t.logger.Infow("executing "+action+" issue use case", "issue_id", issueID, "actor_id", actor.ID)

	if err := actor.Require(authorization.RoleAdmin, action+" issues"); err != nil {
		t.logger.Warnw("actor not allowed to "+action, "issue_id", issueID, "actor_id", actor.ID, "role", actor.Role)
		return err
	}
	return nil
}

// apply runs an already authorized step.
func (t *adminTransition) apply(
	ctx context.Context,
	actor authorization.Actor,
	issueID, action string,
	mutate func(ctx context.Context, i *issue.Issue) error,
) (*dto.IssueDTO, error) {
	now := t.clock()
	var (
		result *issue.Issue
		score  float64
	)
	err := t.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		i, err := t.issues.GetByID(ctx, issueID)
		if err != nil {
			return err
		}
		if err := mutate(ctx, i); err != nil {
			return err
		}
		if err := t.store.Save(ctx, i); err != nil {
			return err
		}
		score, err = t.scorer.Score(ctx, i, now)
		result = i
		return err
	})
	if err != nil {
		t.logger.Warnw("failed to "+action+" issue", "issue_id", issueID, "actor_id", actor.ID, "error", err)
		return nil, err
	}

	t.logger.Infow("issue "+action+" completed", "issue_id", issueID, "status", result.Status())
	return dto.ToIssueDTO(result, score, now), nil
}
