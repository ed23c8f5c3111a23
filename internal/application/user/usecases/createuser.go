package usecases

import (
	"context"
	"fmt"

	"campusvoice/internal/application/user/dto"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

// CreateUserUseCase registers a member. Only admins may create accounts.
type CreateUserUseCase struct {
	userRepo    user.Repository
	departments DepartmentChecker
	clock       Clock
	logger      logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	departments DepartmentChecker,
	clock Clock,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:    userRepo,
		departments: departments,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, actor authorization.Actor, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := actor.Require(authorization.RoleAdmin, "create users"); err != nil {
		return nil, err
	}

	role, ok := authorization.ParseUserRole(req.Role)
	if !ok {
		return nil, errors.NewValidationError("invalid role", req.Role)
	}

	if req.DepartmentID != "" {
		exists, err := uc.departments.Exists(ctx, req.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to check department: %w", err)
		}
		if !exists {
			return nil, errors.NewNotFoundError("department not found", req.DepartmentID)
		}
	}

	u, err := user.NewUser(req.Name, role, req.DepartmentID, uc.clock())
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "role", role, "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", role, "created_by", actor.ID)
	return dto.ToUserResponse(u), nil
}
