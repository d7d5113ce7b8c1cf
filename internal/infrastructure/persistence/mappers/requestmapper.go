package mappers

import (
	"fmt"
	"time"

	"github.com/mnsternik/issue-manager/internal/domain/request"
	vo "github.com/mnsternik/issue-manager/internal/domain/request/value_objects"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/models"
)

// RequestMapper handles the conversion between request domain entities and
// persistence models.
type RequestMapper interface {
	ToModel(r *request.Request) *models.RequestModel
	ToDomain(model *models.RequestModel) (*request.Request, error)
	ResponseToModel(r *request.Response) *models.ResponseModel
	ResponseToDomain(model *models.ResponseModel) *request.Response
	AttachmentToModel(requestID uint, a *request.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) *request.Attachment
}

type RequestMapperImpl struct{}

func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

func (m *RequestMapperImpl) ToModel(r *request.Request) *models.RequestModel {
	model := &models.RequestModel{
		ID:             r.ID(),
		Title:          r.Title(),
		Description:    r.Description(),
		Status:         r.Status().String(),
		Priority:       r.Priority().String(),
		CategoryID:     r.CategoryID(),
		AuthorID:       r.AuthorID(),
		AssignedUserID: r.AssignedUserID(),
		AssignedTeamID: r.AssignedTeamID(),
		Version:        r.Version(),
		CreatedAt:      r.CreatedAt().UnixMilli(),
	}

	if r.UpdatedAt() != nil {
		updated := r.UpdatedAt().UnixMilli()
		model.UpdatedAt = &updated
	}

	return model
}

func (m *RequestMapperImpl) ToDomain(model *models.RequestModel) (*request.Request, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in database: %w", err)
	}

	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in database: %w", err)
	}

	var updatedAt *time.Time
	if model.UpdatedAt != nil {
		t := time.UnixMilli(*model.UpdatedAt).UTC()
		updatedAt = &t
	}

	return request.ReconstructRequest(
		model.ID,
		model.Title,
		model.Description,
		status,
		priority,
		model.CategoryID,
		model.AuthorID,
		model.AssignedUserID,
		model.AssignedTeamID,
		model.Version,
		time.UnixMilli(model.CreatedAt).UTC(),
		updatedAt,
	)
}

func (m *RequestMapperImpl) ResponseToModel(r *request.Response) *models.ResponseModel {
	return &models.ResponseModel{
		ID:        r.ID(),
		RequestID: r.RequestID(),
		AuthorID:  r.AuthorID(),
		Text:      r.Text(),
		CreatedAt: r.CreatedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) ResponseToDomain(model *models.ResponseModel) *request.Response {
	return request.ReconstructResponse(
		model.ID,
		model.RequestID,
		model.AuthorID,
		model.Text,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func (m *RequestMapperImpl) AttachmentToModel(requestID uint, a *request.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:          a.ID(),
		RequestID:   requestID,
		FileName:    a.FileName(),
		ContentType: a.ContentType(),
		Size:        a.Size(),
		Data:        a.Data(),
		CreatedAt:   a.CreatedAt().UnixMilli(),
	}
}

func (m *RequestMapperImpl) AttachmentToDomain(model *models.AttachmentModel) *request.Attachment {
	return request.ReconstructAttachment(
		model.ID,
		model.RequestID,
		model.FileName,
		model.ContentType,
		model.Size,
		model.Data,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
