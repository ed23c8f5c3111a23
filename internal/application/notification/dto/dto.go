package dto

import (
	"time"

	"campusvoice/internal/domain/notification"
)

type NotificationDTO struct {
	ID          string     `json:"id"`
	IssueID     string     `json:"issue_id,omitempty"`
	TemplateKey string     `json:"template_key"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Read        bool       `json:"read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ListNotificationsRequest struct {
	Page       int  `form:"page"`
	PageSize   int  `form:"page_size"`
	UnreadOnly bool `form:"unread"`
}

type ListNotificationsResponse struct {
	Items    []*NotificationDTO `json:"items"`
	Total    int64              `json:"total"`
	Unread   int64              `json:"unread"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:          n.ID(),
		IssueID:     n.IssueID(),
		TemplateKey: n.TemplateKey(),
		Title:       n.Title(),
		Message:     n.Message(),
		Read:        n.IsRead(),
		ReadAt:      n.ReadAt(),
		CreatedAt:   n.CreatedAt(),
	}
}
