package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mnsternik/issue-manager/internal/domain/request"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/mappers"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/models"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *AttachmentRepository) SaveAll(ctx context.Context, requestID uint, attachments []*request.Attachment) error {
	if len(attachments) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, attachment := range attachments {
			model := r.mapper.AttachmentToModel(requestID, attachment)
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to save attachment: %w", err)
			}
		}
		return nil
	})
}

func (r *AttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*request.Attachment, error) {
	var model models.AttachmentModel

	if err := r.db.WithContext(ctx).First(&model, attachmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("attachment not found")
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return r.mapper.AttachmentToDomain(&model), nil
}

func (r *AttachmentRepository) GetByRequestID(ctx context.Context, requestID uint) ([]*request.Attachment, error) {
	var attachmentModels []models.AttachmentModel

	if err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at ASC, id ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find attachments: %w", err)
	}

	attachments := make([]*request.Attachment, len(attachmentModels))
	for i, model := range attachmentModels {
		attachments[i] = r.mapper.AttachmentToDomain(&model)
	}

	return attachments, nil
}
