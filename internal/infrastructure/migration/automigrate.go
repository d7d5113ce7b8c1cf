package migration

import (
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.RequestModel{},
		&models.ResponseModel{},
		&models.AttachmentModel{},
		&models.CategoryModel{},
		&models.TeamModel{},
		&models.NotificationModel{},
	}
}
