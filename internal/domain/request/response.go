package request

import (
	"fmt"
	"time"
)

const maxResponseLength = 1000

// Response is a threaded reply on a request. Responses are immutable once
// created.
type Response struct {
	id        uint
	requestID uint
	authorID  string
	text      string
	createdAt time.Time
}

func NewResponse(requestID uint, authorID string, text string) (*Response, error) {
	if authorID == "" {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("response text is required")
	}
	if len(text) > maxResponseLength {
		return nil, fmt.Errorf("response text exceeds maximum length of %d characters", maxResponseLength)
	}

	return &Response{
		requestID: requestID,
		authorID:  authorID,
		text:      text,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructResponse(
	id uint,
	requestID uint,
	authorID string,
	text string,
	createdAt time.Time,
) *Response {
	return &Response{
		id:        id,
		requestID: requestID,
		authorID:  authorID,
		text:      text,
		createdAt: createdAt,
	}
}

func (r *Response) ID() uint {
	return r.id
}

func (r *Response) RequestID() uint {
	return r.requestID
}

func (r *Response) AuthorID() string {
	return r.authorID
}

func (r *Response) Text() string {
	return r.text
}

func (r *Response) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Response) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("response ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("response ID cannot be zero")
	}
	r.id = id
	return nil
}
