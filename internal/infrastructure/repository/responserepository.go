package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mnsternik/issue-manager/internal/domain/request"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/mappers"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/models"
)

type ResponseRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *ResponseRepository) Save(ctx context.Context, response *request.Response) error {
	model := r.mapper.ResponseToModel(response)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}

	return response.SetID(model.ID)
}

func (r *ResponseRepository) GetByRequestID(ctx context.Context, requestID uint) ([]*request.Response, error) {
	var responseModels []models.ResponseModel

	if err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at ASC, id ASC").
		Find(&responseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find responses: %w", err)
	}

	responses := make([]*request.Response, len(responseModels))
	for i, model := range responseModels {
		responses[i] = r.mapper.ResponseToDomain(&model)
	}

	return responses, nil
}
