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

type SubmitIssueUseCase struct {
	store       *IssueStore
	supports    issue.SupportRepository
	users       CredibilityStore
	departments DepartmentChecker
	tx          TransactionRunner
	clock       Clock
	logger      logger.Interface
}

func NewSubmitIssueUseCase(
	store *IssueStore,
	supports issue.SupportRepository,
	users CredibilityStore,
	departments DepartmentChecker,
	tx TransactionRunner,
	clock Clock,
	logger logger.Interface,
) *SubmitIssueUseCase {
	return &SubmitIssueUseCase{
		store:       store,
		supports:    supports,
		users:       users,
		departments: departments,
		tx:          tx,
		clock:       clock,
		logger:      logger,
	}
}

// Execute creates a PENDING_APPROVAL issue supported by its creator.
func (uc *SubmitIssueUseCase) Execute(ctx context.Context, actor authorization.Actor, req dto.SubmitIssueRequest) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing submit issue use case", "actor_id", actor.ID, "category", req.Category)

	if err := actor.Require(authorization.RoleStudent, "submit issues"); err != nil {
		return nil, err
	}
	if err := utils.ValidateEvidenceURL("evidence_url", req.EvidenceURL); err != nil {
		return nil, err
	}

	now := uc.clock()
	i, err := issue.NewIssue(issue.SubmitParams{
		Title:        req.Title,
		Description:  req.Description,
		Category:     vo.Category(req.Category),
		DepartmentID: req.DepartmentID,
		Urgency:      vo.Urgency(req.Urgency),
		Deadline:     req.Deadline,
		EvidenceURL:  req.EvidenceURL,
		CreatorID:    actor.ID,
	}, now)
	if err != nil {
		uc.logger.Warnw("invalid issue submission", "actor_id", actor.ID, "error", err)
		return nil, err
	}

	exists, err := uc.departments.Exists(ctx, i.DepartmentID())
	if err != nil {
		uc.logger.Errorw("failed to check department", "department_id", i.DepartmentID(), "error", err)
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("department not found", i.DepartmentID())
	}

	var score float64
	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		creds, err := uc.users.GetCredibilities(ctx, []string{actor.ID})
		if err != nil {
			return err
		}
		score = issue.PriorityScore(i.Urgency(), i.CreatedAt(), creds[actor.ID], now)
		i.RefreshPriorityScore(score)

		if err := uc.store.Create(ctx, i); err != nil {
			return err
		}
		return uc.supports.Create(ctx, issue.NewSupport(i.ID(), actor.ID, now))
	})
	if err != nil {
		uc.logger.Errorw("failed to submit issue", "actor_id", actor.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("issue submitted successfully", "issue_id", i.ID(), "actor_id", actor.ID)
	return dto.ToIssueDTO(i, score, now), nil
}
