package usecases

import (
	"context"

	"campusvoice/internal/application/user/dto"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID string) (*dto.UserResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponse(u), nil
}
