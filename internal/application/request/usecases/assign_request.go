package usecases

import (
	"context"

	"github.com/mnsternik/issue-manager/internal/domain/identity"
	"github.com/mnsternik/issue-manager/internal/domain/notification"
	"github.com/mnsternik/issue-manager/internal/domain/request"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
)

type AssignRequestCommand struct {
	RequestID uint
	Viewer    *identity.Viewer
}

type AssignRequestResult struct {
	RequestID      uint   `json:"request_id"`
	AssignedUserID string `json:"assigned_user_id"`
	AssignedTeamID *uint  `json:"assigned_team_id"`
	Status         string `json:"status"`
}

type AssignRequestUseCase struct {
	requestRepo      request.RequestRepository
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewAssignRequestUseCase(
	requestRepo request.RequestRepository,
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *AssignRequestUseCase {
	return &AssignRequestUseCase{
		requestRepo:      requestRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *AssignRequestUseCase) Execute(
	ctx context.Context,
	cmd AssignRequestCommand,
) (*AssignRequestResult, error) {
	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.Viewer == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	uc.logger.Infow("executing assign request use case",
		"request_id", cmd.RequestID,
		"viewer_id", cmd.Viewer.ID)

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to find request", "error", err, "request_id", cmd.RequestID)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to load request")
	}

	perms := request.ComputePermissions(req, cmd.Viewer)
	if !perms.AllowAssign {
		uc.logger.Warnw("assignment not permitted",
			"request_id", cmd.RequestID,
			"viewer_id", cmd.Viewer.ID)
		return nil, errors.NewForbiddenError("you are not allowed to assign this request")
	}

	if err := req.AssignTo(cmd.Viewer.ID, cmd.Viewer.TeamID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update request", "error", err, "request_id", cmd.RequestID)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to assign request")
	}

	uc.notifyAuthor(ctx, req, cmd.Viewer)

	uc.logger.Infow("request assigned",
		"request_id", req.ID(),
		"assigned_user_id", cmd.Viewer.ID)

	return &AssignRequestResult{
		RequestID:      req.ID(),
		AssignedUserID: cmd.Viewer.ID,
		AssignedTeamID: req.AssignedTeamID(),
		Status:         req.Status().String(),
	}, nil
}

// notifyAuthor records an inbox entry for the request author. Failures are
// logged and swallowed; notifications never block the assignment.
func (uc *AssignRequestUseCase) notifyAuthor(ctx context.Context, req *request.Request, viewer *identity.Viewer) {
	if req.AuthorID() == viewer.ID {
		return
	}

	n, err := notification.NewNotification(req.AuthorID(), notification.KindRequestAssigned, map[string]any{
		"request_id":       req.ID(),
		"request_title":    req.Title(),
		"assigned_user_id": viewer.ID,
	})
	if err != nil {
		uc.logger.Warnw("failed to build notification", "error", err)
		return
	}

	if err := uc.notificationRepo.Save(ctx, n); err != nil {
		uc.logger.Warnw("failed to save notification", "error", err, "request_id", req.ID())
	}
}
