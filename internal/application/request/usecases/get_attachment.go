package usecases

import (
	"context"

	"github.com/mnsternik/issue-manager/internal/domain/request"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
)

type GetAttachmentQuery struct {
	AttachmentID uint
}

// AttachmentDownload carries the stored file content for streaming back to
// the client.
type AttachmentDownload struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

type GetAttachmentUseCase struct {
	attachmentRepo request.AttachmentRepository
	logger         logger.Interface
}

func NewGetAttachmentUseCase(
	attachmentRepo request.AttachmentRepository,
	logger logger.Interface,
) *GetAttachmentUseCase {
	return &GetAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetAttachmentUseCase) Execute(
	ctx context.Context,
	query GetAttachmentQuery,
) (*AttachmentDownload, error) {
	if query.AttachmentID == 0 {
		return nil, errors.NewValidationError("attachment ID is required")
	}

	attachment, err := uc.attachmentRepo.GetByID(ctx, query.AttachmentID)
	if err != nil {
		uc.logger.Errorw("failed to find attachment", "error", err, "attachment_id", query.AttachmentID)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to load attachment")
	}

	return &AttachmentDownload{
		FileName:    attachment.FileName(),
		ContentType: attachment.ContentType(),
		Size:        attachment.Size(),
		Data:        attachment.Data(),
	}, nil
}
