package dto

import (
	"time"

	"github.com/mnsternik/issue-manager/internal/domain/request"
)

type RequestDTO struct {
	ID             uint            `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	Priority       string          `json:"priority"`
	CategoryID     uint            `json:"category_id"`
	AuthorID       string          `json:"author_id"`
	AssignedUserID *string         `json:"assigned_user_id"`
	AssignedTeamID *uint           `json:"assigned_team_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at"`
	Responses      []ResponseDTO   `json:"responses"`
	Attachments    []AttachmentDTO `json:"attachments"`
	AllowAssign    bool            `json:"allow_assign"`
	AllowEdit      bool            `json:"allow_edit"`
}

type ResponseDTO struct {
	ID        uint      `json:"id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	HTML      string    `json:"html"`
	CreatedAt time.Time `json:"created_at"`
}

// AttachmentDTO carries metadata only; content is served by the download
// endpoint.
type AttachmentDTO struct {
	ID          uint   `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type RequestListItemDTO struct {
	ID             uint       `json:"id"`
	Title          string     `json:"title"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	CategoryID     uint       `json:"category_id"`
	AuthorID       string     `json:"author_id"`
	AssignedUserID *string    `json:"assigned_user_id"`
	AssignedTeamID *uint      `json:"assigned_team_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

// ToRequestDTO maps the aggregate with per-viewer permissions. renderHTML
// turns the raw response text into sanitized HTML; pass nil to skip
// rendering.
func ToRequestDTO(r *request.Request, perms request.Permissions, renderHTML func(string) string) *RequestDTO {
	if r == nil {
		return nil
	}

	responses := make([]ResponseDTO, 0, len(r.Responses()))
	for _, resp := range r.Responses() {
		item := ResponseDTO{
			ID:        resp.ID(),
			AuthorID:  resp.AuthorID(),
			Text:      resp.Text(),
			CreatedAt: resp.CreatedAt(),
		}
		if renderHTML != nil {
			item.HTML = renderHTML(resp.Text())
		}
		responses = append(responses, item)
	}

	attachments := make([]AttachmentDTO, 0, len(r.Attachments()))
	for _, att := range r.Attachments() {
		attachments = append(attachments, AttachmentDTO{
			ID:          att.ID(),
			FileName:    att.FileName(),
			ContentType: att.ContentType(),
			Size:        att.Size(),
		})
	}

	return &RequestDTO{
		ID:             r.ID(),
		Title:          r.Title(),
		Description:    r.Description(),
		Status:         r.Status().String(),
		Priority:       r.Priority().String(),
		CategoryID:     r.CategoryID(),
		AuthorID:       r.AuthorID(),
		AssignedUserID: r.AssignedUserID(),
		AssignedTeamID: r.AssignedTeamID(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
		Responses:      responses,
		Attachments:    attachments,
		AllowAssign:    perms.AllowAssign,
		AllowEdit:      perms.AllowEdit,
	}
}

func ToRequestListItemDTO(r *request.Request) RequestListItemDTO {
	return RequestListItemDTO{
		ID:             r.ID(),
		Title:          r.Title(),
		Status:         r.Status().String(),
		Priority:       r.Priority().String(),
		CategoryID:     r.CategoryID(),
		AuthorID:       r.AuthorID(),
		AssignedUserID: r.AssignedUserID(),
		AssignedTeamID: r.AssignedTeamID(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}
