package notification

import (
	"context"

	"campusvoice/internal/application/notification/dto"
	"campusvoice/internal/application/notification/usecases"
	domain "campusvoice/internal/domain/notification"
	"campusvoice/internal/domain/shared/events"
	"campusvoice/internal/shared/authorization"
	"campusvoice/internal/shared/logger"
)

type ServiceDDD struct {
	logger logger.Interface

	eventHandler      *usecases.IssueEventHandler
	listNotifications *usecases.ListNotificationsUseCase
	markRead          *usecases.MarkNotificationReadUseCase
}

func NewServiceDDD(repo domain.Repository, catalog *domain.Catalog, clock usecases.Clock, logger logger.Interface) *ServiceDDD {
	return &ServiceDDD{
		logger: logger,

		eventHandler:      usecases.NewIssueEventHandler(repo, catalog, clock, logger),
		listNotifications: usecases.NewListNotificationsUseCase(repo, logger),
		markRead:          usecases.NewMarkNotificationReadUseCase(repo, clock, logger),
	}
}

// SubscribeTo wires the inbox to issue lifecycle events.
func (s *ServiceDDD) SubscribeTo(subscriber events.EventSubscriber) error {
	return s.eventHandler.Subscribe(subscriber)
}

func (s *ServiceDDD) ListNotifications(ctx context.Context, actor authorization.Actor, req dto.ListNotificationsRequest) (*dto.ListNotificationsResponse, error) {
	return s.listNotifications.Execute(ctx, actor, req)
}

func (s *ServiceDDD) MarkNotificationRead(ctx context.Context, actor authorization.Actor, notificationID string) (*dto.NotificationDTO, error) {
	return s.markRead.Execute(ctx, actor, notificationID)
}
