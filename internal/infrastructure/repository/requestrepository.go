package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mnsternik/issue-manager/internal/domain/request"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/mappers"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/models"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/utils"
)

type RequestRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *RequestRepository) Save(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save request: %w", err)
		}

		for _, attachment := range req.Attachments() {
			attachmentModel := r.mapper.AttachmentToModel(model.ID, attachment)
			if err := tx.Create(attachmentModel).Error; err != nil {
				return fmt.Errorf("failed to save attachment: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return req.SetID(model.ID)
}

// Update writes the request guarded by its version column. A concurrent
// writer bumps the version first, which makes this update match zero rows.
func (r *RequestRepository) Update(ctx context.Context, req *request.Request) error {
	model := r.mapper.ToModel(req)

	// Map form forces NULL writes for cleared assignment fields.
	result := r.db.WithContext(ctx).
		Model(&models.RequestModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]any{
			"status":           model.Status,
			"priority":         model.Priority,
			"category_id":      model.CategoryID,
			"assigned_user_id": model.AssignedUserID,
			"assigned_team_id": model.AssignedTeamID,
			"updated_at":       model.UpdatedAt,
			"version":          model.Version + 1,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update request: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.RequestModel{}).
			Where("id = ?", model.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to verify request existence: %w", err)
		}
		if count == 0 {
			return errors.NewNotFoundError("request not found")
		}
		return errors.NewConcurrencyConflictError("request")
	}

	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, requestID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", requestID).Delete(&models.ResponseModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete responses: %w", err)
		}

		if err := tx.Where("request_id = ?", requestID).Delete(&models.AttachmentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete attachments: %w", err)
		}

		result := tx.Delete(&models.RequestModel{}, requestID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete request: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("request not found")
		}

		return nil
	})
}

func (r *RequestRepository) GetByID(ctx context.Context, requestID uint) (*request.Request, error) {
	var model models.RequestModel

	if err := r.db.WithContext(ctx).First(&model, requestID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("request not found")
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestRepository) List(
	ctx context.Context,
	filters request.SearchFilters,
) ([]*request.Request, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.RequestModel{})

	if filters.RequestID != nil {
		query = query.Where("id = ?", *filters.RequestID)
	}
	if filters.Title != nil {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(*filters.Title)+"%")
	}
	if filters.Description != nil {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(*filters.Description)+"%")
	}
	if filters.Status != nil {
		query = query.Where("status = ?", filters.Status.String())
	}
	if filters.Priority != nil {
		query = query.Where("priority = ?", filters.Priority.String())
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.AuthorID != nil {
		query = query.Where("author_id = ?", *filters.AuthorID)
	}
	if filters.AssignedUserID != nil {
		query = query.Where("assigned_user_id = ?", *filters.AssignedUserID)
	}
	if filters.AssignedTeamID != nil {
		query = query.Where("assigned_team_id = ?", *filters.AssignedTeamID)
	}
	if filters.CreatedAfter != nil {
		query = query.Where("created_at >= ?", filters.CreatedAfter.UnixMilli())
	}
	if filters.CreatedBefore != nil {
		query = query.Where("created_at <= ?", filters.CreatedBefore.UnixMilli())
	}
	if filters.UpdatedAfter != nil {
		query = query.Where("updated_at >= ?", filters.UpdatedAfter.UnixMilli())
	}
	if filters.UpdatedBefore != nil {
		query = query.Where("updated_at <= ?", filters.UpdatedBefore.UnixMilli())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requests: %w", err)
	}

	query = query.Order("created_at DESC, id DESC")

	if filters.PageSize > 0 {
		limit, offset := utils.PageOffset(filters.Page, filters.PageSize)
		query = query.Limit(limit).Offset(offset)
	}

	var requestModels []models.RequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list requests: %w", err)
	}

	requests := make([]*request.Request, len(requestModels))
	for i, model := range requestModels {
		req, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		requests[i] = req
	}

	return requests, total, nil
}
