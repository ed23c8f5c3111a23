package models

import "campusvoice/internal/shared/constants"

type NotificationModel struct {
	ID          string `gorm:"primaryKey;size:32"`
	RecipientID string `gorm:"size:32;not null;index:idx_notifications_recipient_created"`
	IssueID     string `gorm:"size:32;index"`
	TemplateKey string `gorm:"size:50;not null"`
	Title       string `gorm:"size:200;not null"`
	Message     string `gorm:"type:text"`
	ReadAt      *int64
	CreatedAt   int64 `gorm:"not null;index:idx_notifications_recipient_created"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
