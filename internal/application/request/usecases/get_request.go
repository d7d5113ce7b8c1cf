package usecases

import (
	"context"

	"github.com/mnsternik/issue-manager/internal/application/request/dto"
	"github.com/mnsternik/issue-manager/internal/domain/identity"
	"github.com/mnsternik/issue-manager/internal/domain/request"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
	"github.com/mnsternik/issue-manager/internal/shared/services/markdown"
)

type GetRequestQuery struct {
	RequestID uint
	Viewer    *identity.Viewer
}

type GetRequestUseCase struct {
	requestRepo    request.RequestRepository
	responseRepo   request.ResponseRepository
	attachmentRepo request.AttachmentRepository
	markdown       markdown.Service
	logger         logger.Interface
}

func NewGetRequestUseCase(
	requestRepo request.RequestRepository,
	responseRepo request.ResponseRepository,
	attachmentRepo request.AttachmentRepository,
	markdown markdown.Service,
	logger logger.Interface,
) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo:    requestRepo,
		responseRepo:   responseRepo,
		attachmentRepo: attachmentRepo,
		markdown:       markdown,
		logger:         logger,
	}
}

func (uc *GetRequestUseCase) Execute(
	ctx context.Context,
	query GetRequestQuery,
) (*dto.RequestDTO, error) {
	if query.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	req, err := uc.requestRepo.GetByID(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to find request", "error", err, "request_id", query.RequestID)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to load request")
	}

	responses, err := uc.responseRepo.GetByRequestID(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load responses", "error", err, "request_id", query.RequestID)
		return nil, errors.NewInternalError("failed to load request responses")
	}
	req.LoadResponses(responses)

	attachments, err := uc.attachmentRepo.GetByRequestID(ctx, query.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to load attachments", "error", err, "request_id", query.RequestID)
		return nil, errors.NewInternalError("failed to load request attachments")
	}
	req.LoadAttachments(attachments)

	perms := request.ComputePermissions(req, query.Viewer)

	return dto.ToRequestDTO(req, perms, uc.renderHTML), nil
}

func (uc *GetRequestUseCase) renderHTML(text string) string {
	html, err := uc.markdown.ToHTMLSanitized(text)
	if err != nil {
		uc.logger.Warnw("markdown rendering failed", "error", err)
		return ""
	}
	return html
}
