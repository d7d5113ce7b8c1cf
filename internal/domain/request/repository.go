package request

import (
	"context"
	"time"

	vo "github.com/mnsternik/issue-manager/internal/domain/request/value_objects"
)

type RequestRepository interface {
	Save(ctx context.Context, request *Request) error
	Update(ctx context.Context, request *Request) error
	Delete(ctx context.Context, requestID uint) error
	GetByID(ctx context.Context, requestID uint) (*Request, error)
	List(ctx context.Context, filters SearchFilters) ([]*Request, int64, error)
}

// SearchFilters narrows a request listing. Every field is optional; set
// fields combine with AND. Text fields match as case-insensitive substrings,
// timestamp bounds are inclusive.
type SearchFilters struct {
	RequestID      *uint
	Title          *string
	Description    *string
	Status         *vo.Status
	Priority       *vo.Priority
	CategoryID     *uint
	AuthorID       *string
	AssignedUserID *string
	AssignedTeamID *uint
	CreatedAfter   *time.Time
	CreatedBefore  *time.Time
	UpdatedAfter   *time.Time
	UpdatedBefore  *time.Time
	Page           int
	PageSize       int
}

type ResponseRepository interface {
	Save(ctx context.Context, response *Response) error
	GetByRequestID(ctx context.Context, requestID uint) ([]*Response, error)
}

type AttachmentRepository interface {
	SaveAll(ctx context.Context, requestID uint, attachments []*Attachment) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	GetByRequestID(ctx context.Context, requestID uint) ([]*Attachment, error)
}
