package usecases

import (
	"context"
	"sort"

	"campusvoice/internal/application/issue/dto"
	"campusvoice/internal/domain/issue"
	vo "campusvoice/internal/domain/issue/valueobjects"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/utils"
)

type ListIssuesUseCase struct {
	issues issue.Repository
	scorer *Scorer
	clock  Clock
	logger logger.Interface
}

func NewListIssuesUseCase(issues issue.Repository, scorer *Scorer, clock Clock, logger logger.Interface) *ListIssuesUseCase {
	return &ListIssuesUseCase{issues: issues, scorer: scorer, clock: clock, logger: logger}
}

// Execute ranks the matching issues by read-time priority score, highest
// first, and returns the requested page. Ties go to the older issue.
func (uc *ListIssuesUseCase) Execute(ctx context.Context, req dto.ListIssuesRequest) (*dto.ListIssuesResponse, error) {
	filter, err := toFilter(req)
	if err != nil {
		return nil, err
	}
	p := utils.ValidatePagination(req.Page, req.PageSize)

	list, err := uc.issues.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list issues", "error", err)
		return nil, err
	}

	now := uc.clock()
	scores, err := uc.scorer.ScoreAll(ctx, list, now)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(list, func(a, b int) bool {
		sa, sb := scores[list[a].ID()], scores[list[b].ID()]
		if sa != sb {
			return sa > sb
		}
		return list[a].CreatedAt().Before(list[b].CreatedAt())
	})

	start, end := utils.ApplyPagination(len(list), p.Page, p.PageSize)
	items := make([]*dto.IssueDTO, 0, end-start)
	for _, i := range list[start:end] {
		items = append(items, dto.ToIssueDTO(i, scores[i.ID()], now))
	}

	return &dto.ListIssuesResponse{
		Items:    items,
		Total:    int64(len(list)),
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

func toFilter(req dto.ListIssuesRequest) (issue.Filter, error) {
	filter := issue.Filter{DepartmentID: req.DepartmentID, CreatorID: req.CreatorID}
	if req.Status != "" {
		status := vo.IssueStatus(req.Status)
		if !status.IsValid() {
			return filter, errors.NewValidationError("invalid status filter", req.Status)
		}
		filter.Status = &status
	}
	if req.Category != "" {
		category := vo.Category(req.Category)
		if !category.IsValid() {
			return filter, errors.NewValidationError("invalid category filter", req.Category)
		}
		filter.Category = &category
	}
	return filter, nil
}
