package usecases

import (
	"context"

	"github.com/mnsternik/issue-manager/internal/domain/identity"
	"github.com/mnsternik/issue-manager/internal/domain/request"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
)

type DeleteRequestCommand struct {
	RequestID uint
	Viewer    *identity.Viewer
}

type DeleteRequestUseCase struct {
	requestRepo request.RequestRepository
	logger      logger.Interface
}

func NewDeleteRequestUseCase(
	requestRepo request.RequestRepository,
	logger logger.Interface,
) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *DeleteRequestUseCase) Execute(ctx context.Context, cmd DeleteRequestCommand) error {
	if cmd.RequestID == 0 {
		return errors.NewValidationError("request ID is required")
	}
	if cmd.Viewer == nil {
		return errors.NewUnauthorizedError("authentication required")
	}
	if !cmd.Viewer.IsAdmin() {
		return errors.NewForbiddenError("only administrators can delete requests")
	}

	if _, err := uc.requestRepo.GetByID(ctx, cmd.RequestID); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return errors.NewInternalError("failed to load request")
	}

	if err := uc.requestRepo.Delete(ctx, cmd.RequestID); err != nil {
		uc.logger.Errorw("failed to delete request", "error", err, "request_id", cmd.RequestID)
		return errors.NewInternalError("failed to delete request")
	}

	uc.logger.Infow("request deleted",
		"request_id", cmd.RequestID,
		"deleted_by", cmd.Viewer.ID)

	return nil
}
