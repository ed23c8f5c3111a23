package usecases

import (
	"context"

	"campusvoice/internal/application/user/dto"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/mapper"
	"campusvoice/internal/shared/utils"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, actor authorization.Actor, req dto.ListUsersRequest) (*dto.ListUsersResponse, error) {
	if err := actor.Require(authorization.RoleAdmin, "list users"); err != nil {
		return nil, err
	}

	filter := user.ListFilter{DepartmentID: req.DepartmentID}
	if req.Role != "" {
		role, ok := authorization.ParseUserRole(req.Role)
		if !ok {
			return nil, errors.NewValidationError("invalid role filter", req.Role)
		}
		filter.Role = role
	}

	p := utils.ValidatePagination(req.Page, req.PageSize)
	filter.Page = p.Page
	filter.PageSize = p.PageSize

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return &dto.ListUsersResponse{
		Items:    mapper.MapSlice(users, dto.ToUserResponse),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
