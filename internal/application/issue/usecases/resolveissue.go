package usecases

import (
	"context"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/issue"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type ResolveIssueUseCase struct {
	adminTransition
	ledger *credibilityLedger
}

func NewResolveIssueUseCase(
	issues issue.Repository,
	store *IssueStore,
	scorer *Scorer,
	supports issue.SupportRepository,
	users CredibilityStore,
	tx TransactionRunner,
	clock Clock,
	logger logger.Interface,
) *ResolveIssueUseCase {
	return &ResolveIssueUseCase{
		adminTransition: adminTransition{issues: issues, store: store, scorer: scorer, tx: tx, clock: clock, logger: logger},
		ledger:          &credibilityLedger{users: users, supports: supports, logger: logger},
	}
}

// Execute resolves an OPEN or IN_REVIEW issue, opens the contest window and
// grants the resolution rewards the first time the issue is resolved.
func (uc *ResolveIssueUseCase) Execute(ctx context.Context, actor authorization.Actor, issueID string, req dto.ResolveIssueRequest) (*dto.IssueDTO, error) {
	if err := uc.authorize(actor, issueID, "resolve"); err != nil {
		return nil, err
	}
	if err := utils.ValidateEvidenceURL("evidence_url", req.EvidenceURL); err != nil {
		return nil, err
	}
	now := uc.clock()
	return uc.apply(ctx, actor, issueID, "resolve", func(ctx context.Context, i *issue.Issue) error {
		if err := i.Resolve(actor.ID, req.Summary, req.EvidenceURL, now); err != nil {
			return err
		}
		return uc.ledger.grantResolutionRewards(ctx, i)
	})
}

type ReResolveIssueUseCase struct {
	adminTransition
}

func NewReResolveIssueUseCase(
	issues issue.Repository,
	store *IssueStore,
	scorer *Scorer,
	tx TransactionRunner,
	clock Clock,
	logger logger.Interface,
) *ReResolveIssueUseCase {
	return &ReResolveIssueUseCase{adminTransition{issues: issues, store: store, scorer: scorer, tx: tx, clock: clock, logger: logger}}
}

// Execute posts a new resolution for an escalated issue and opens the
// revalidation vote.
func (uc *ReResolveIssueUseCase) Execute(ctx context.Context, actor authorization.Actor, issueID string, req dto.ResolveIssueRequest) (*dto.IssueDTO, error) {
	if err := uc.authorize(actor, issueID, "re-resolve"); err != nil {
		return nil, err
	}
	if err := utils.ValidateEvidenceURL("evidence_url", req.EvidenceURL); err != nil {
		return nil, err
	}
	now := uc.clock()
	return uc.apply(ctx, actor, issueID, "re-resolve", func(ctx context.Context, i *issue.Issue) error {
		return i.ReResolve(actor.ID, req.Summary, req.EvidenceURL, now)
	})
}
