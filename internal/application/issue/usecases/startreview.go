package usecases

import (
	"context"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/issue"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
)

type StartReviewUseCase struct {
	adminTransition
}

func NewStartReviewUseCase(
	issues issue.Repository,
	store *IssueStore,
	scorer *Scorer,
	tx TransactionRunner,
	clock Clock,
	logger logger.Interface,
) *StartReviewUseCase {
	return &StartReviewUseCase{adminTransition{issues: issues, store: store, scorer: scorer, tx: tx, clock: clock, logger: logger}}
}

func (uc *StartReviewUseCase) Execute(ctx context.Context, actor authorization.Actor, issueID string) (*dto.IssueDTO, error) {
	now := uc.clock()
	return uc.run(ctx, actor, issueID, "review", func(ctx context.Context, i *issue.Issue) error {
		return i.StartReview(actor.ID, now)
	})
}
