package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnsternik/issue-manager/internal/domain/request"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
)

func TestGetAttachmentUseCase_Execute_Success(t *testing.T) {
	attachmentRepo := &mockAttachmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Attachment, error) {
			return request.ReconstructAttachment(id, 5, "report.pdf", "application/pdf", 3, []byte("pdf"), time.Now().UTC()), nil
		},
	}
	uc := NewGetAttachmentUseCase(attachmentRepo, &mockLogger{})

	download, err := uc.Execute(context.Background(), GetAttachmentQuery{AttachmentID: 9})
	require.NoError(t, err)

	assert.Equal(t, "report.pdf", download.FileName)
	assert.Equal(t, "application/pdf", download.ContentType)
	assert.Equal(t, []byte("pdf"), download.Data)
}

func TestGetAttachmentUseCase_Execute_NotFound(t *testing.T) {
	attachmentRepo := &mockAttachmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Attachment, error) {
			return nil, errors.NewNotFoundError("attachment not found")
		},
	}
	uc := NewGetAttachmentUseCase(attachmentRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetAttachmentQuery{AttachmentID: 9})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetAttachmentUseCase_Execute_MissingID(t *testing.T) {
	uc := NewGetAttachmentUseCase(&mockAttachmentRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetAttachmentQuery{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
