package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusvoice/internal/domain/notification"
	"campusvoice/internal/infrastructure/persistence/mappers"
	"campusvoice/internal/infrastructure/persistence/models"
	"campusvoice/internal/shared/db"
	apperrors "campusvoice/internal/shared/errors"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/mapper"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewNotificationRepository(gdb *gorm.DB, logger logger.Interface) notification.Repository {
	return &NotificationRepositoryImpl{db: gdb, logger: logger}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.NotificationToModel(n)).Error; err != nil {
		r.logger.Errorw("failed to create notification", "recipient_id", n.RecipientID(), "error", err)
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepositoryImpl) GetByID(ctx context.Context, notificationID string) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", notificationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("notification not found", notificationID)
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return mappers.NotificationToDomain(&model)
}

func (r *NotificationRepositoryImpl) Update(ctx context.Context, n *notification.Notification) error {
	model := mappers.NotificationToModel(n)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).
		Where("id = ?", model.ID).
		Update("read_at", model.ReadAt)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("notification not found", model.ID)
	}
	return nil
}

func (r *NotificationRepositoryImpl) ListByRecipient(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).
		Where("recipient_id = ?", filter.RecipientID)
	if filter.UnreadOnly {
		query = query.Where("read_at IS NULL")
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var list []*models.NotificationModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	items, err := mapper.MapSliceWithError(list, mappers.NotificationToDomain)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
