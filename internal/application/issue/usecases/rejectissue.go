package usecases

import (
	"context"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/issue"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
)

type RejectIssueUseCase struct {
	adminTransition
	ledger *credibilityLedger
}

func NewRejectIssueUseCase(
	issues issue.Repository,
	store *IssueStore,
	scorer *Scorer,
	users CredibilityStore,
	tx TransactionRunner,
	clock Clock,
	logger logger.Interface,
) *RejectIssueUseCase {
	return &RejectIssueUseCase{
		adminTransition: adminTransition{issues: issues, store: store, scorer: scorer, tx: tx, clock: clock, logger: logger},
		ledger:          &credibilityLedger{users: users, logger: logger},
	}
}

// Execute rejects a pending submission. MarkFake also charges the creator
// the fake-report penalty.
func (uc *RejectIssueUseCase) Execute(ctx context.Context, actor authorization.Actor, issueID string, req dto.RejectIssueRequest) (*dto.IssueDTO, error) {
	now := uc.clock()
	return uc.run(ctx, actor, issueID, "reject", func(ctx context.Context, i *issue.Issue) error {
		if err := i.Reject(actor.ID, req.Reason, now); err != nil {
			return err
		}
		if req.MarkFake {
			return uc.ledger.penalizeFakeReport(ctx, i)
		}
		return nil
	})
}
