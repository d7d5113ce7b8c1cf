package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnsternik/issue-manager/internal/domain/notification"
	"github.com/mnsternik/issue-manager/internal/domain/request"
	vo "github.com/mnsternik/issue-manager/internal/domain/request/value_objects"
	"github.com/mnsternik/issue-manager/internal/shared/constants"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
)

func TestAssignRequestUseCase_Execute_Success(t *testing.T) {
	stored := storedRequest(t, 5, nil, nil)
	var updated *request.Request
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return stored, nil
		},
		UpdateFunc: func(ctx context.Context, r *request.Request) error {
			updated = r
			return nil
		},
	}
	var savedNotification *notification.Notification
	notificationRepo := &mockNotificationRepository{
		SaveFunc: func(ctx context.Context, n *notification.Notification) error {
			savedNotification = n
			return nil
		},
	}

	uc := NewAssignRequestUseCase(requestRepo, notificationRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignRequestCommand{
		RequestID: 5,
		Viewer:    testViewer("u2", uintPtr(3)),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), result.RequestID)
	assert.Equal(t, "u2", result.AssignedUserID)
	require.NotNil(t, result.AssignedTeamID)
	assert.Equal(t, uint(3), *result.AssignedTeamID)

	require.NotNil(t, updated)
	assert.Equal(t, "u2", *updated.AssignedUserID())

	require.NotNil(t, savedNotification, "author gets an inbox entry")
	assert.Equal(t, "u1", savedNotification.RecipientID())
	assert.Equal(t, notification.KindRequestAssigned, savedNotification.Kind())
}

func TestAssignRequestUseCase_Execute_StatusUnchanged(t *testing.T) {
	stored := storedRequest(t, 5, nil, nil)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return stored, nil
		},
	}

	uc := NewAssignRequestUseCase(requestRepo, &mockNotificationRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignRequestCommand{
		RequestID: 5,
		Viewer:    testViewer("u2", nil),
	})
	require.NoError(t, err)

	assert.Equal(t, vo.StatusOpen.String(), result.Status)
	assert.Equal(t, vo.StatusOpen, stored.Status())
}

func TestAssignRequestUseCase_Execute_Forbidden(t *testing.T) {
	tests := []struct {
		name           string
		assignedUserID *string
		assignedTeamID *uint
		viewerID       string
		viewerTeamID   *uint
		viewerRoles    []string
	}{
		{
			name:           "different team",
			assignedUserID: strPtr("u9"), assignedTeamID: uintPtr(4),
			viewerID: "u2", viewerTeamID: uintPtr(5),
		},
		{
			name:           "already assigned to viewer",
			assignedUserID: strPtr("u2"), assignedTeamID: uintPtr(4),
			viewerID: "u2", viewerTeamID: uintPtr(4),
		},
		{
			name:           "admin already assigned to self",
			assignedUserID: strPtr("u2"), assignedTeamID: uintPtr(4),
			viewerID: "u2", viewerTeamID: uintPtr(4), viewerRoles: []string{constants.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := storedRequest(t, 5, tt.assignedUserID, tt.assignedTeamID)
			updateCalled := false
			requestRepo := &mockRequestRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
					return stored, nil
				},
				UpdateFunc: func(ctx context.Context, r *request.Request) error {
					updateCalled = true
					return nil
				},
			}

			uc := NewAssignRequestUseCase(requestRepo, &mockNotificationRepository{}, &mockLogger{})

			_, err := uc.Execute(context.Background(), AssignRequestCommand{
				RequestID: 5,
				Viewer:    testViewer(tt.viewerID, tt.viewerTeamID, tt.viewerRoles...),
			})
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
			assert.False(t, updateCalled)
		})
	}
}

func TestAssignRequestUseCase_Execute_AdminCrossesTeams(t *testing.T) {
	stored := storedRequest(t, 5, strPtr("u9"), uintPtr(4))
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return stored, nil
		},
	}

	uc := NewAssignRequestUseCase(requestRepo, &mockNotificationRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), AssignRequestCommand{
		RequestID: 5,
		Viewer:    testViewer("admin-1", uintPtr(9), constants.RoleAdmin),
	})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", result.AssignedUserID)
}

func TestAssignRequestUseCase_Execute_AnonymousViewer(t *testing.T) {
	uc := NewAssignRequestUseCase(&mockRequestRepository{}, &mockNotificationRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AssignRequestCommand{RequestID: 5, Viewer: nil})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestAssignRequestUseCase_Execute_RequestNotFound(t *testing.T) {
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return nil, errors.NewNotFoundError("request not found")
		},
	}
	uc := NewAssignRequestUseCase(requestRepo, &mockNotificationRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AssignRequestCommand{
		RequestID: 5,
		Viewer:    testViewer("u2", nil),
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAssignRequestUseCase_Execute_ConcurrencyConflictPassesThrough(t *testing.T) {
	stored := storedRequest(t, 5, nil, nil)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return stored, nil
		},
		UpdateFunc: func(ctx context.Context, r *request.Request) error {
			return errors.NewConcurrencyConflictError("request")
		},
	}
	uc := NewAssignRequestUseCase(requestRepo, &mockNotificationRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AssignRequestCommand{
		RequestID: 5,
		Viewer:    testViewer("u2", nil),
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestAssignRequestUseCase_Execute_NotificationFailureDoesNotBlock(t *testing.T) {
	stored := storedRequest(t, 5, nil, nil)
	requestRepo := &mockRequestRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*request.Request, error) {
			return stored, nil
		},
	}
	notificationRepo := &mockNotificationRepository{
		SaveFunc: func(ctx context.Context, n *notification.Notification) error {
			return assert.AnError
		},
	}
	uc := NewAssignRequestUseCase(requestRepo, notificationRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), AssignRequestCommand{
		RequestID: 5,
		Viewer:    testViewer("u2", nil),
	})
	assert.NoError(t, err)
}
