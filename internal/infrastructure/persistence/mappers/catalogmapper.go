package mappers

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/mnsternik/issue-manager/internal/domain/category"
	"github.com/mnsternik/issue-manager/internal/domain/notification"
	"github.com/mnsternik/issue-manager/internal/domain/team"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/models"
)

func CategoryToModel(c *category.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:        c.ID(),
		Name:      c.Name(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func CategoryToDomain(model *models.CategoryModel) *category.Category {
	return category.ReconstructCategory(model.ID, model.Name, time.UnixMilli(model.CreatedAt).UTC())
}

func TeamToModel(t *team.Team) *models.TeamModel {
	return &models.TeamModel{
		ID:        t.ID(),
		Name:      t.Name(),
		CreatedAt: t.CreatedAt().UnixMilli(),
	}
}

func TeamToDomain(model *models.TeamModel) *team.Team {
	return team.ReconstructTeam(model.ID, model.Name, time.UnixMilli(model.CreatedAt).UTC())
}

func NotificationToModel(n *notification.Notification) *models.NotificationModel {
	model := &models.NotificationModel{
		ID:          n.ID(),
		RecipientID: n.RecipientID(),
		Kind:        string(n.Kind()),
		CreatedAt:   n.CreatedAt().UnixMilli(),
	}

	if len(n.Payload()) > 0 {
		if payload, err := json.Marshal(n.Payload()); err == nil {
			model.Payload = datatypes.JSON(payload)
		}
	}

	if n.ReadAt() != nil {
		read := n.ReadAt().UnixMilli()
		model.ReadAt = &read
	}

	return model
}

func NotificationToDomain(model *models.NotificationModel) *notification.Notification {
	var payload map[string]any
	if len(model.Payload) > 0 {
		_ = json.Unmarshal(model.Payload, &payload)
	}

	var readAt *time.Time
	if model.ReadAt != nil {
		t := time.UnixMilli(*model.ReadAt).UTC()
		readAt = &t
	}

	return notification.ReconstructNotification(
		model.ID,
		model.RecipientID,
		notification.Kind(model.Kind),
		payload,
		readAt,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
