package models

import "gorm.io/datatypes"

type NotificationModel struct {
	ID          uint           `gorm:"primaryKey"`
	RecipientID string         `gorm:"size:100;not null;index"`
	Kind        string         `gorm:"size:50;not null"`
	Payload     datatypes.JSON `gorm:"type:json"`
	ReadAt      *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
