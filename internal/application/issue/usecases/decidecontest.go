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

type DecideContestUseCase struct {
	adminTransition
	ledger *credibilityLedger
}

func NewDecideContestUseCase(
	issues issue.Repository,
	store *IssueStore,
	scorer *Scorer,
	contests issue.ContestRepository,
	users CredibilityStore,
	tx TransactionRunner,
	clock Clock,
	logger logger.Interface,
) *DecideContestUseCase {
	return &DecideContestUseCase{
		adminTransition: adminTransition{issues: issues, store: store, scorer: scorer, tx: tx, clock: clock, logger: logger},
		ledger:          &credibilityLedger{users: users, contests: contests, logger: logger},
	}
}

// Execute rules on an escalated issue. ACCEPT reopens it; REJECT dismisses
// the round's contests and, with Penalize, charges each contester.
func (uc *DecideContestUseCase) Execute(ctx context.Context, actor authorization.Actor, issueID string, req dto.ContestDecisionRequest) (*dto.IssueDTO, error) {
	const action = "decide contest on"
	if err := uc.authorize(actor, issueID, action); err != nil {
		return nil, err
	}
	decision, err := vo.NewContestDecision(req.Decision)
	if err != nil {
		return nil, errors.NewValidationError("decision must be ACCEPT or REJECT", req.Decision)
	}
	now := uc.clock()
	return uc.apply(ctx, actor, issueID, action, func(ctx context.Context, i *issue.Issue) error {
		if err := i.DecideContest(actor.ID, decision, req.Explanation, now); err != nil {
			return err
		}
		if decision == vo.DecisionReject && req.Penalize {
			return uc.ledger.penalizeContesters(ctx, i)
		}
		return nil
	})
}
