package usecases

import (
	"context"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/issue"
	vo "campusvoice/internal/domain/issue/valueobjects"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type UpdateIssueFieldsUseCase struct {
	adminTransition
	supports issue.SupportRepository
	contests issue.ContestRepository
}

func NewUpdateIssueFieldsUseCase(
	issues issue.Repository,
	store *IssueStore,
	scorer *Scorer,
	supports issue.SupportRepository,
	contests issue.ContestRepository,
	tx TransactionRunner,
	clock Clock,
	logger logger.Interface,
) *UpdateIssueFieldsUseCase {
	return &UpdateIssueFieldsUseCase{
		adminTransition: adminTransition{issues: issues, store: store, scorer: scorer, tx: tx, clock: clock, logger: logger},
		supports:        supports,
		contests:        contests,
	}
}

// Execute applies a typed field patch. Counters may only be set to the
// sizes of their ledgers.
func (uc *UpdateIssueFieldsUseCase) Execute(ctx context.Context, actor authorization.Actor, issueID string, req dto.UpdateIssueFieldsRequest) (*dto.IssueDTO, error) {
	if err := uc.authorize(actor, issueID, "update"); err != nil {
		return nil, err
	}
	patch, err := toFieldsPatch(req)
	if err != nil {
		return nil, err
	}
	now := uc.clock()
	return uc.apply(ctx, actor, issueID, "update", func(ctx context.Context, i *issue.Issue) error {
		supportRows, err := uc.supports.CountByIssue(ctx, i.ID())
		if err != nil {
			return err
		}
		contestRows, err := uc.contests.CountByRound(ctx, i.ID(), i.ResolutionRound())
		if err != nil {
			return err
		}
		return i.ApplyPatch(actor.ID, patch, supportRows, contestRows, now)
	})
}

func toFieldsPatch(req dto.UpdateIssueFieldsRequest) (issue.FieldsPatch, error) {
	patch := issue.FieldsPatch{
		PriorityScore:         req.PriorityScore,
		SupportCount:          req.SupportCount,
		ContestCount:          req.ContestCount,
		ResolutionEvidenceURL: req.ResolutionEvidenceURL,
	}
	if req.Status != nil {
		status := vo.IssueStatus(*req.Status)
		if !status.IsValid() {
			return patch, errors.NewValidationError("invalid status", *req.Status)
		}
		patch.Status = &status
	}
	if req.ResolutionEvidenceURL != nil {
		if err := utils.ValidateEvidenceURL("resolution_evidence_url", *req.ResolutionEvidenceURL); err != nil {
			return patch, err
		}
	}
	return patch, nil
}
