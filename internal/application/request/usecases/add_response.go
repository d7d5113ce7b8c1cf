package usecases

import (
	"context"

	"github.com/mnsternik/issue-manager/internal/domain/identity"
	"github.com/mnsternik/issue-manager/internal/domain/notification"
	"github.com/mnsternik/issue-manager/internal/domain/request"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
)

type AddResponseCommand struct {
	RequestID uint
	Viewer    *identity.Viewer
	Text      string
}

type AddResponseResult struct {
	ResponseID uint   `json:"response_id"`
	RequestID  uint   `json:"request_id"`
	CreatedAt  string `json:"created_at"`
}

type AddResponseUseCase struct {
	requestRepo      request.RequestRepository
	responseRepo     request.ResponseRepository
	notificationRepo notification.NotificationRepository
	logger           logger.Interface
}

func NewAddResponseUseCase(
	requestRepo request.RequestRepository,
	responseRepo request.ResponseRepository,
	notificationRepo notification.NotificationRepository,
	logger logger.Interface,
) *AddResponseUseCase {
	return &AddResponseUseCase{
		requestRepo:      requestRepo,
		responseRepo:     responseRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *AddResponseUseCase) Execute(
	ctx context.Context,
	cmd AddResponseCommand,
) (*AddResponseResult, error) {
	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.Viewer == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to find request", "error", err, "request_id", cmd.RequestID)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to load request")
	}

	response, err := request.NewResponse(req.ID(), cmd.Viewer.ID, cmd.Text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.responseRepo.Save(ctx, response); err != nil {
		uc.logger.Errorw("failed to save response", "error", err, "request_id", cmd.RequestID)
		return nil, errors.NewInternalError("failed to add response")
	}

	// A new response counts as activity on the request itself.
	if err := req.AddResponse(response); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update request", "error", err, "request_id", cmd.RequestID)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to add response")
	}

	uc.notifyParticipants(ctx, req, cmd.Viewer)

	uc.logger.Infow("response added",
		"request_id", req.ID(),
		"response_id", response.ID(),
		"author_id", cmd.Viewer.ID)

	return &AddResponseResult{
		ResponseID: response.ID(),
		RequestID:  req.ID(),
		CreatedAt:  response.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// notifyParticipants records inbox entries for the author and the assignee,
// skipping whoever wrote the response. Failures are logged and swallowed.
func (uc *AddResponseUseCase) notifyParticipants(ctx context.Context, req *request.Request, viewer *identity.Viewer) {
	recipients := make([]string, 0, 2)
	if req.AuthorID() != viewer.ID {
		recipients = append(recipients, req.AuthorID())
	}
	if assignee := req.AssignedUserID(); assignee != nil && *assignee != viewer.ID && *assignee != req.AuthorID() {
		recipients = append(recipients, *assignee)
	}

	for _, recipient := range recipients {
		n, err := notification.NewNotification(recipient, notification.KindResponseAdded, map[string]any{
			"request_id":    req.ID(),
			"request_title": req.Title(),
			"author_id":     viewer.ID,
		})
		if err != nil {
			uc.logger.Warnw("failed to build notification", "error", err)
			continue
		}
		if err := uc.notificationRepo.Save(ctx, n); err != nil {
			uc.logger.Warnw("failed to save notification", "error", err, "request_id", req.ID())
		}
	}
}
