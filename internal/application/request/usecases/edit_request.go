package usecases

import (
	"context"

	"github.com/mnsternik/issue-manager/internal/domain/category"
	"github.com/mnsternik/issue-manager/internal/domain/identity"
	"github.com/mnsternik/issue-manager/internal/domain/request"
	vo "github.com/mnsternik/issue-manager/internal/domain/request/value_objects"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
)

type EditRequestCommand struct {
	RequestID      uint
	Viewer         *identity.Viewer
	Priority       string
	Status         string
	CategoryID     uint
	AssignedUserID *string
	AssignedTeamID *uint
}

type EditRequestResult struct {
	RequestID uint   `json:"request_id"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	UpdatedAt string `json:"updated_at"`
}

type EditRequestUseCase struct {
	requestRepo  request.RequestRepository
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewEditRequestUseCase(
	requestRepo request.RequestRepository,
	categoryRepo category.CategoryRepository,
	logger logger.Interface,
) *EditRequestUseCase {
	return &EditRequestUseCase{
		requestRepo:  requestRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *EditRequestUseCase) Execute(
	ctx context.Context,
	cmd EditRequestCommand,
) (*EditRequestResult, error) {
	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}
	if cmd.Viewer == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	uc.logger.Infow("executing edit request use case",
		"request_id", cmd.RequestID,
		"viewer_id", cmd.Viewer.ID)

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError("invalid priority")
	}
	status, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError("invalid status")
	}

	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("category does not exist")
		}
		return nil, errors.NewInternalError("failed to verify category")
	}

	req, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to find request", "error", err, "request_id", cmd.RequestID)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to load request")
	}

	perms := request.ComputePermissions(req, cmd.Viewer)
	if !perms.AllowEdit {
		uc.logger.Warnw("edit not permitted",
			"request_id", cmd.RequestID,
			"viewer_id", cmd.Viewer.ID)
		return nil, errors.NewForbiddenError("only the assigned user can edit this request")
	}

	err = req.ApplyEdit(request.EditChanges{
		Priority:       priority,
		Status:         status,
		CategoryID:     cmd.CategoryID,
		AssignedUserID: cmd.AssignedUserID,
		AssignedTeamID: cmd.AssignedTeamID,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, req); err != nil {
		uc.logger.Errorw("failed to update request", "error", err, "request_id", cmd.RequestID)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to update request")
	}

	uc.logger.Infow("request updated", "request_id", req.ID())

	return &EditRequestResult{
		RequestID: req.ID(),
		Status:    req.Status().String(),
		Priority:  req.Priority().String(),
		UpdatedAt: req.UpdatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
