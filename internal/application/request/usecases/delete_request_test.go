package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnsternik/issue-manager/internal/domain/request"
	"github.com/mnsternik/issue-manager/internal/shared/constants"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
)

func TestDeleteRequestUseCase_Execute_AdminOnly(t *testing.T) {
	stored := storedRequest(t, 5, nil, nil)
	deleted := false
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return stored, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	uc := NewDeleteRequestUseCase(requestRepo, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteRequestCommand{
		RequestID: 5,
		Viewer:    testViewer("u2", nil),
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	assert.False(t, deleted)

	err = uc.Execute(context.Background(), DeleteRequestCommand{
		RequestID: 5,
		Viewer:    testViewer("admin-1", nil, constants.RoleAdmin),
	})
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteRequestUseCase_Execute_NotFound(t *testing.T) {
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return nil, errors.NewNotFoundError("request not found")
		},
	}
	uc := NewDeleteRequestUseCase(requestRepo, &mockLogger{})

	err := uc.Execute(context.Background(), DeleteRequestCommand{
		RequestID: 99,
		Viewer:    testViewer("admin-1", nil, constants.RoleAdmin),
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
