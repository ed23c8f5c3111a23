package usecases

import (
	"context"

	"campusvoice/internal/application/notification/dto"
	"campusvoice/internal/domain/notification"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/mapper"
	"campusvoice/internal/shared/utils"
)

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, actor authorization.Actor, req dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error) {
	if actor.ID == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	p := utils.ValidatePagination(req.Page, req.PageSize)
	items, total, err := uc.repo.ListByRecipient(ctx, notification.ListFilter{
		RecipientID: actor.ID,
		UnreadOnly:  req.UnreadOnly,
		Page:        p.Page,
		PageSize:    p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "recipient_id", actor.ID, "error", err)
		return nil, err
	}

	unread, err := uc.repo.CountUnread(ctx, actor.ID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "recipient_id", actor.ID, "error", err)
		return nil, err
	}

	return &dto.ListNotificationsResponse{
		Items:    mapper.MapSlice(items, dto.ToNotificationDTO),
		Total:    total,
		Unread:   unread,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
