package request

import (
	"mime/multipart"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mnsternik/issue-manager/internal/application/request/usecases"
	domainrequest "github.com/mnsternik/issue-manager/internal/domain/request"
	"github.com/mnsternik/issue-manager/internal/shared/constants"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
)

type CreateRequestForm struct {
	Title       string `form:"title" binding:"required,max=100"`
	Description string `form:"description" binding:"required,max=1000"`
	Priority    string `form:"priority" binding:"required,oneof=low medium high critical"`
	CategoryID  uint   `form:"category_id" binding:"required"`
}

func (r *CreateRequestForm) ToCommand(authorID string, files []domainrequest.UploadedFile) usecases.CreateRequestCommand {
	return usecases.CreateRequestCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		CategoryID:  r.CategoryID,
		AuthorID:    authorID,
		Files:       files,
	}
}

type EditRequestRequest struct {
	Priority       string  `json:"priority" binding:"required,oneof=low medium high critical"`
	Status         string  `json:"status" binding:"required,oneof=open in_progress resolved closed"`
	CategoryID     uint    `json:"category_id" binding:"required"`
	AssignedUserID *string `json:"assigned_user_id"`
	AssignedTeamID *uint   `json:"assigned_team_id"`
}

type AddResponseRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

type ListRequestsRequest struct {
	Page           int
	RequestID      *uint
	Title          *string
	Description    *string
	Status         *string
	Priority       *string
	CategoryID     *uint
	AuthorID       *string
	AssignedUserID *string
	AssignedTeamID *uint
	CreatedAfter   *time.Time
	CreatedBefore  *time.Time
	UpdatedAfter   *time.Time
	UpdatedBefore  *time.Time
}

func (r *ListRequestsRequest) ToQuery() usecases.ListRequestsQuery {
	return usecases.ListRequestsQuery{
		RequestID:      r.RequestID,
		Title:          r.Title,
		Description:    r.Description,
		Status:         r.Status,
		Priority:       r.Priority,
		CategoryID:     r.CategoryID,
		AuthorID:       r.AuthorID,
		AssignedUserID: r.AssignedUserID,
		AssignedTeamID: r.AssignedTeamID,
		CreatedAfter:   r.CreatedAfter,
		CreatedBefore:  r.CreatedBefore,
		UpdatedAfter:   r.UpdatedAfter,
		UpdatedBefore:  r.UpdatedBefore,
		Page:           r.Page,
	}
}

// parseListRequestsRequest reads the list filters from the query string.
// Page size is fixed server-side and is not accepted as a parameter.
func parseListRequestsRequest(c *gin.Context) (*ListRequestsRequest, error) {
	// An absent page means the first one; an explicit page below 1 is kept
	// as-is and resolves to an empty result set downstream.
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if err != nil {
		return nil, errors.NewValidationError("invalid page")
	}

	req := &ListRequestsRequest{Page: page}

	if requestIDStr := c.Query("id"); requestIDStr != "" {
		requestID, err := strconv.ParseUint(requestIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid id")
		}
		id := uint(requestID)
		req.RequestID = &id
	}

	if title := c.Query("title"); title != "" {
		req.Title = &title
	}

	if description := c.Query("description"); description != "" {
		req.Description = &description
	}

	if status := c.Query("status"); status != "" {
		req.Status = &status
	}

	if priority := c.Query("priority"); priority != "" {
		req.Priority = &priority
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid category_id")
		}
		id := uint(categoryID)
		req.CategoryID = &id
	}

	if authorID := c.Query("author_id"); authorID != "" {
		req.AuthorID = &authorID
	}

	if assignedUserID := c.Query("assigned_user_id"); assignedUserID != "" {
		req.AssignedUserID = &assignedUserID
	}

	if assignedTeamIDStr := c.Query("assigned_team_id"); assignedTeamIDStr != "" {
		assignedTeamID, err := strconv.ParseUint(assignedTeamIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid assigned_team_id")
		}
		id := uint(assignedTeamID)
		req.AssignedTeamID = &id
	}

	if afterStr := c.Query("created_after"); afterStr != "" {
		after, err := parseTimeParam(afterStr)
		if err != nil {
			return nil, errors.NewValidationError("invalid created_after, expected RFC3339 or YYYY-MM-DD")
		}
		req.CreatedAfter = &after
	}

	if beforeStr := c.Query("created_before"); beforeStr != "" {
		before, err := parseTimeParam(beforeStr)
		if err != nil {
			return nil, errors.NewValidationError("invalid created_before, expected RFC3339 or YYYY-MM-DD")
		}
		req.CreatedBefore = &before
	}

	if afterStr := c.Query("updated_after"); afterStr != "" {
		after, err := parseTimeParam(afterStr)
		if err != nil {
			return nil, errors.NewValidationError("invalid updated_after, expected RFC3339 or YYYY-MM-DD")
		}
		req.UpdatedAfter = &after
	}

	if beforeStr := c.Query("updated_before"); beforeStr != "" {
		before, err := parseTimeParam(beforeStr)
		if err != nil {
			return nil, errors.NewValidationError("invalid updated_before, expected RFC3339 or YYYY-MM-DD")
		}
		req.UpdatedBefore = &before
	}

	return req, nil
}

func parseTimeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// uploadedFiles converts multipart file headers into upload descriptors.
// The returned closers must be invoked once the files have been consumed.
func uploadedFiles(headers []*multipart.FileHeader) ([]domainrequest.UploadedFile, []func() error, error) {
	files := make([]domainrequest.UploadedFile, 0, len(headers))
	closers := make([]func() error, 0, len(headers))

	for _, header := range headers {
		opened, err := header.Open()
		if err != nil {
			for _, closeFn := range closers {
				_ = closeFn()
			}
			return nil, nil, errors.NewValidationError("failed to read uploaded file", header.Filename)
		}

		closers = append(closers, opened.Close)
		files = append(files, domainrequest.UploadedFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      opened,
		})
	}

	return files, closers, nil
}
