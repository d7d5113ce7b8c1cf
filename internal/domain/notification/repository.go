package notification

import "context"

type NotificationRepository interface {
	Save(ctx context.Context, notification *Notification) error
	GetByRecipientID(ctx context.Context, recipientID string) ([]*Notification, error)
	MarkRead(ctx context.Context, notificationID uint) error
}
