package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mnsternik/issue-manager/internal/domain/notification"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/mappers"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/models"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	model := mappers.NotificationToModel(n)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return n.SetID(model.ID)
}

func (r *NotificationRepository) GetByRecipientID(ctx context.Context, recipientID string) ([]*notification.Notification, error) {
	var notificationModels []models.NotificationModel

	if err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", err)
	}

	notifications := make([]*notification.Notification, len(notificationModels))
	for i, model := range notificationModels {
		notifications[i] = mappers.NotificationToDomain(&model)
	}

	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.NotificationModel{}).
		Where("id = ? AND read_at IS NULL", notificationID).
		Update("read_at", time.Now().UTC().UnixMilli())

	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("notification not found or already read")
	}
	return nil
}
