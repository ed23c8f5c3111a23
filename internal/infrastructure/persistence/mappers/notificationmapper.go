package mappers

import (
	"campusvoice/internal/domain/notification"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/biztime"
)

func NotificationToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:          n.ID(),
		RecipientID: n.RecipientID(),
		IssueID:     n.IssueID(),
		TemplateKey: n.TemplateKey(),
		Title:       n.Title(),
		Message:     n.Message(),
		ReadAt:      biztime.OptionalToMillis(n.ReadAt()),
		CreatedAt:   biztime.ToMillis(n.CreatedAt()),
	}
}

func NotificationToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		model.ID,
		model.RecipientID,
		model.IssueID,
		model.TemplateKey,
		model.Title,
		model.Message,
		biztime.OptionalFromMillis(model.ReadAt),
		biztime.FromMillis(model.CreatedAt),
	)
}
