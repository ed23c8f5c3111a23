package usecases

import (
	"context"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/issue"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
)

type ApproveIssueUseCase struct {
	adminTransition
}

func NewApproveIssueUseCase(
	issues issue.Repository,
	store *IssueStore,
	scorer *Scorer,
	tx TransactionRunner,
	clock Clock,
	logger logger.Interface,
) *ApproveIssueUseCase {
	return &ApproveIssueUseCase{adminTransition{issues: issues, store: store, scorer: scorer, tx: tx, clock: clock, logger: logger}}
}

func (uc *ApproveIssueUseCase) Execute(ctx context.Context, actor authorization.Actor, issueID string) (*dto.IssueDTO, error) {
	now := uc.clock()
	return uc.run(ctx, actor, issueID, "approve", func(ctx context.Context, i *issue.Issue) error {
		return i.Approve(actor.ID, now)
	})
}
