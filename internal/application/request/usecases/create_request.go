package usecases

import (
	"context"

	"github.com/mnsternik/issue-manager/internal/domain/category"
	"github.com/mnsternik/issue-manager/internal/domain/request"
	vo "github.com/mnsternik/issue-manager/internal/domain/request/value_objects"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
)

type CreateRequestCommand struct {
	Title       string
	Description string
	Priority    string
	CategoryID  uint
	AuthorID    string
	Files       []request.UploadedFile
}

type CreateRequestResult struct {
	RequestID       uint   `json:"request_id"`
	Status          string `json:"status"`
	AttachmentCount int    `json:"attachment_count"`
	CreatedAt       string `json:"created_at"`
}

type CreateRequestUseCase struct {
	requestRepo  request.RequestRepository
	categoryRepo category.CategoryRepository
	policy       request.AttachmentPolicy
	logger       logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo request.RequestRepository,
	categoryRepo category.CategoryRepository,
	policy request.AttachmentPolicy,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo:  requestRepo,
		categoryRepo: categoryRepo,
		policy:       policy,
		logger:       logger,
	}
}

func (uc *CreateRequestUseCase) Execute(
	ctx context.Context,
	cmd CreateRequestCommand,
) (*CreateRequestResult, error) {
	uc.logger.Infow("executing create request use case",
		"author_id", cmd.AuthorID,
		"category_id", cmd.CategoryID,
		"file_count", len(cmd.Files))

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError("invalid priority")
	}

	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		uc.logger.Errorw("category lookup failed", "error", err, "category_id", cmd.CategoryID)
		if errors.IsNotFoundError(err) {
			return nil, errors.NewValidationError("category does not exist")
		}
		return nil, errors.NewInternalError("failed to verify category")
	}

	req, err := request.NewRequest(cmd.Title, cmd.Description, priority, cmd.CategoryID, cmd.AuthorID)
	if err != nil {
		uc.logger.Errorw("invalid create request command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	attachments, err := uc.policy.Process(cmd.Files)
	if err != nil {
		uc.logger.Errorw("attachment validation failed", "error", err)
		return nil, err
	}
	req.AttachFiles(attachments)

	if err := uc.requestRepo.Save(ctx, req); err != nil {
		uc.logger.Errorw("failed to save request", "error", err)
		return nil, errors.NewInternalError("failed to create request")
	}

	uc.logger.Infow("request created successfully",
		"request_id", req.ID(),
		"author_id", cmd.AuthorID,
		"attachment_count", len(attachments))

	return &CreateRequestResult{
		RequestID:       req.ID(),
		Status:          req.Status().String(),
		AttachmentCount: len(attachments),
		CreatedAt:       req.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
