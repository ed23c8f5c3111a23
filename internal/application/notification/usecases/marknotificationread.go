package usecases

import (
	"context"
	"fmt"

	"campusvoice/internal/application/notification/dto"
	"campusvoice/internal/domain/notification"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
)

type MarkNotificationReadUseCase struct {
	repo   notification.Repository
	clock  Clock
	logger logger.Interface
}

func NewMarkNotificationReadUseCase(repo notification.Repository, clock Clock, logger logger.Interface) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, actor authorization.Actor, notificationID string) (*dto.NotificationDTO, error) {
	if actor.ID == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	n, err := uc.repo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	if n.RecipientID() != actor.ID {
		uc.logger.Warnw("unauthorized access to notification", "id", notificationID, "actor_id", actor.ID, "owner_id", n.RecipientID())
		return nil, errors.NewForbiddenError("you don't have permission to access this notification")
	}

	if n.IsRead() {
		return dto.ToNotificationDTO(n), nil
	}

	n.MarkRead(uc.clock())
	if err := uc.repo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to persist notification update", "id", notificationID, "error", err)
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}

	return dto.ToNotificationDTO(n), nil
}
