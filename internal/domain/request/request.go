package request

import (
	"fmt"
	"time"

	vo "github.com/mnsternik/issue-manager/internal/domain/request/value_objects"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 1000
)

// Request is the central trackable entity: an issue submitted by a user,
// categorized, optionally assigned to a user and team, and progressed through
// a status lifecycle.
type Request struct {
	id             uint
	title          string
	description    string
	status         vo.Status
	priority       vo.Priority
	categoryID     uint
	authorID       string
	assignedUserID *string
	assignedTeamID *uint
	version        int
	createdAt      time.Time
	updatedAt      *time.Time
	attachments    []*Attachment
	responses      []*Response
}

func NewRequest(
	title string,
	description string,
	priority vo.Priority,
	categoryID uint,
	authorID string,
) (*Request, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if authorID == "" {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Request{
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		categoryID:  categoryID,
		authorID:    authorID,
		version:     1,
		createdAt:   time.Now().UTC(),
		attachments: []*Attachment{},
		responses:   []*Response{},
	}, nil
}

func ReconstructRequest(
	id uint,
	title string,
	description string,
	status vo.Status,
	priority vo.Priority,
	categoryID uint,
	authorID string,
	assignedUserID *string,
	assignedTeamID *uint,
	version int,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if authorID == "" {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Request{
		id:             id,
		title:          title,
		description:    description,
		status:         status,
		priority:       priority,
		categoryID:     categoryID,
		authorID:       authorID,
		assignedUserID: assignedUserID,
		assignedTeamID: assignedTeamID,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		attachments:    []*Attachment{},
		responses:      []*Response{},
	}, nil
}

func (r *Request) ID() uint {
	return r.id
}

func (r *Request) Title() string {
	return r.title
}

func (r *Request) Description() string {
	return r.description
}

func (r *Request) Status() vo.Status {
	return r.status
}

func (r *Request) Priority() vo.Priority {
	return r.priority
}

func (r *Request) CategoryID() uint {
	return r.categoryID
}

func (r *Request) AuthorID() string {
	return r.authorID
}

func (r *Request) AssignedUserID() *string {
	return r.assignedUserID
}

func (r *Request) AssignedTeamID() *uint {
	return r.assignedTeamID
}

func (r *Request) Version() int {
	return r.version
}

func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Request) UpdatedAt() *time.Time {
	return r.updatedAt
}

func (r *Request) Attachments() []*Attachment {
	attachmentsCopy := make([]*Attachment, len(r.attachments))
	copy(attachmentsCopy, r.attachments)
	return attachmentsCopy
}

func (r *Request) Responses() []*Response {
	responsesCopy := make([]*Response, len(r.responses))
	copy(responsesCopy, r.responses)
	return responsesCopy
}

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// AssignTo claims the request for the given user, routing it to that user's
// team. Assignment does not change the status. The caller's authorization is
// checked at the use case boundary, not here.
func (r *Request) AssignTo(userID string, teamID *uint) error {
	if userID == "" {
		return fmt.Errorf("user ID cannot be empty")
	}

	r.assignedUserID = &userID
	r.assignedTeamID = teamID
	r.touch()

	return nil
}

// EditChanges carries the editable fields as submitted by the assignee.
type EditChanges struct {
	Priority       vo.Priority
	Status         vo.Status
	CategoryID     uint
	AssignedUserID *string
	AssignedTeamID *uint
}

// ApplyEdit overwrites the editable fields. Title, description, and author
// are immutable after creation.
func (r *Request) ApplyEdit(changes EditChanges) error {
	if !changes.Priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !changes.Status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if changes.CategoryID == 0 {
		return fmt.Errorf("category ID is required")
	}

	r.priority = changes.Priority
	r.status = changes.Status
	r.categoryID = changes.CategoryID
	r.assignedUserID = changes.AssignedUserID
	r.assignedTeamID = changes.AssignedTeamID
	r.touch()

	return nil
}

// AddResponse appends a response to the in-memory aggregate. Responses are
// append-only; nothing ever edits or removes one.
func (r *Request) AddResponse(response *Response) error {
	if response == nil {
		return fmt.Errorf("response cannot be nil")
	}
	if response.RequestID() != r.id {
		return fmt.Errorf("response request ID mismatch")
	}

	r.responses = append(r.responses, response)
	r.touch()

	return nil
}

// AttachFiles associates processed attachments with the request. Only valid
// at creation time; attachments are not editable afterwards.
func (r *Request) AttachFiles(attachments []*Attachment) {
	r.attachments = append(r.attachments, attachments...)
}

// LoadResponses rehydrates persisted responses without touching updatedAt.
func (r *Request) LoadResponses(responses []*Response) {
	r.responses = append(r.responses, responses...)
}

// LoadAttachments rehydrates persisted attachments without touching updatedAt.
func (r *Request) LoadAttachments(attachments []*Attachment) {
	r.attachments = append(r.attachments, attachments...)
}

func (r *Request) touch() {
	now := time.Now().UTC()
	r.updatedAt = &now
}
