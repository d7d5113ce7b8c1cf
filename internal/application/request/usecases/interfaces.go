package usecases

import (
	"context"

	"github.com/mnsternik/issue-manager/internal/application/request/dto"
)

type CreateRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error)
}

type GetRequestExecutor interface {
	Execute(ctx context.Context, query GetRequestQuery) (*dto.RequestDTO, error)
}

type ListRequestsExecutor interface {
	Execute(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error)
}

type AssignRequestExecutor interface {
	Execute(ctx context.Context, cmd AssignRequestCommand) (*AssignRequestResult, error)
}

type EditRequestExecutor interface {
	Execute(ctx context.Context, cmd EditRequestCommand) (*EditRequestResult, error)
}

type AddResponseExecutor interface {
	Execute(ctx context.Context, cmd AddResponseCommand) (*AddResponseResult, error)
}

type GetAttachmentExecutor interface {
	Execute(ctx context.Context, query GetAttachmentQuery) (*AttachmentDownload, error)
}

type DeleteRequestExecutor interface {
	Execute(ctx context.Context, cmd DeleteRequestCommand) error
}
