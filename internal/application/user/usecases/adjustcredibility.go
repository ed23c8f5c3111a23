package usecases

import (
	"context"

	"campusvoice/internal/application/user/dto"
	"campusvoice/internal/domain/user"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

// AdjustCredibilityUseCase lets an admin apply a named credibility rule by
// hand. The adjustment is clamped by the repository.
type AdjustCredibilityUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewAdjustCredibilityUseCase(userRepo user.Repository, logger logger.Interface) *AdjustCredibilityUseCase {
	return &AdjustCredibilityUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *AdjustCredibilityUseCase) Execute(ctx context.Context, actor authorization.Actor, userID string, req dto.AdjustCredibilityRequest) (*dto.CredibilityResponse, error) {
	if err := actor.Require(authorization.RoleAdmin, "adjust credibility"); err != nil {
		return nil, err
	}

	rule := user.CredibilityRule(req.Rule)
	if !rule.IsValid() {
		return nil, errors.NewValidationError("unknown credibility rule", req.Rule)
	}

	score, err := uc.userRepo.AdjustCredibility(ctx, userID, rule.Delta())
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("credibility adjusted", "user_id", userID, "rule", rule, "credibility", score, "admin_id", actor.ID)
	return &dto.CredibilityResponse{UserID: userID, Rule: string(rule), Credibility: score}, nil
}
