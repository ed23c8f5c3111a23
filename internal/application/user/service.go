package user

import (
	"context"

	"campusvoice/internal/application/user/dto"
	"campusvoice/internal/application/user/usecases"
	domain "campusvoice/internal/domain/user"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
)

type ServiceDDD struct {
	logger logger.Interface

	createUser        *usecases.CreateUserUseCase
	getUser           *usecases.GetUserUseCase
	listUsers         *usecases.ListUsersUseCase
	adjustCredibility *usecases.AdjustCredibilityUseCase
}

func NewServiceDDD(
	userRepo domain.Repository,
	departments usecases.DepartmentChecker,
	clock usecases.Clock,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		logger: logger,

		createUser:        usecases.NewCreateUserUseCase(userRepo, departments, clock, logger),
		getUser:           usecases.NewGetUserUseCase(userRepo, logger),
		listUsers:         usecases.NewListUsersUseCase(userRepo, logger),
		adjustCredibility: usecases.NewAdjustCredibilityUseCase(userRepo, logger),
	}
}

func (s *ServiceDDD) CreateUser(ctx context.Context, actor authorization.Actor, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	return s.createUser.Execute(ctx, actor, req)
}

func (s *ServiceDDD) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	return s.getUser.Execute(ctx, userID)
}

func (s *ServiceDDD) ListUsers(ctx context.Context, actor authorization.Actor, req dto.ListUsersRequest) (*dto.ListUsersResponse, error) {
	return s.listUsers.Execute(ctx, actor, req)
}

func (s *ServiceDDD) AdjustCredibility(ctx context.Context, actor authorization.Actor, userID string, req dto.AdjustCredibilityRequest) (*dto.CredibilityResponse, error) {
	return s.adjustCredibility.Execute(ctx, actor, userID, req)
}
