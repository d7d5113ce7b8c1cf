package request

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mnsternik/issue-manager/internal/application/request/usecases"
	"github.com/mnsternik/issue-manager/internal/interfaces/http/middleware"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
	"github.com/mnsternik/issue-manager/internal/shared/utils"
)

// attachmentsFormField is the multipart field carrying uploaded files.
const attachmentsFormField = "attachments"

type RequestHandler struct {
	createRequestUC usecases.CreateRequestExecutor
	getRequestUC    usecases.GetRequestExecutor
	listRequestsUC  usecases.ListRequestsExecutor
	assignRequestUC usecases.AssignRequestExecutor
	editRequestUC   usecases.EditRequestExecutor
	addResponseUC   usecases.AddResponseExecutor
	getAttachmentUC usecases.GetAttachmentExecutor
	deleteRequestUC usecases.DeleteRequestExecutor
	logger          logger.Interface
}

func NewRequestHandler(
	createRequestUC usecases.CreateRequestExecutor,
	getRequestUC usecases.GetRequestExecutor,
	listRequestsUC usecases.ListRequestsExecutor,
	assignRequestUC usecases.AssignRequestExecutor,
	editRequestUC usecases.EditRequestExecutor,
	addResponseUC usecases.AddResponseExecutor,
	getAttachmentUC usecases.GetAttachmentExecutor,
	deleteRequestUC usecases.DeleteRequestExecutor,
) *RequestHandler {
	return &RequestHandler{
		createRequestUC: createRequestUC,
		getRequestUC:    getRequestUC,
		listRequestsUC:  listRequestsUC,
		assignRequestUC: assignRequestUC,
		editRequestUC:   editRequestUC,
		addResponseUC:   addResponseUC,
		getAttachmentUC: getAttachmentUC,
		deleteRequestUC: deleteRequestUC,
		logger:          logger.NewLogger(),
	}
}

// CreateRequest handles POST /requests
// @Summary Create a new request
// @Description Create a new request with optional file attachments
// @Tags requests
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param title formData string true "Request title"
// @Param description formData string true "Request description"
// @Param priority formData string true "Priority (low, medium, high, critical)"
// @Param category_id formData int true "Category ID"
// @Param attachments formData file false "File attachments"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var form CreateRequestForm
	if bindErr := c.ShouldBind(&form); bindErr != nil {
		h.logger.Warnw("invalid form data for create request", "error", bindErr)
		if err := utils.ValidateStruct(&form); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request data", bindErr.Error()))
		return
	}

	viewer := middleware.ViewerFromContext(c)
	if viewer == nil {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("authentication required"))
		return
	}

	var headers []*multipart.FileHeader
	if multipartForm, err := c.MultipartForm(); err == nil && multipartForm != nil {
		headers = multipartForm.File[attachmentsFormField]
	}

	files, closers, err := uploadedFiles(headers)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer func() {
		for _, closeFn := range closers {
			_ = closeFn()
		}
	}()

	result, err := h.createRequestUC.Execute(c.Request.Context(), form.ToCommand(viewer.ID, files))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Request created successfully")
}

// GetRequest handles GET /requests/:id
// @Summary Get request by ID
// @Description Get request details with responses, attachments and viewer permissions
// @Tags requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetRequestQuery{
		RequestID: requestID,
		Viewer:    middleware.ViewerFromContext(c),
	}

	result, err := h.getRequestUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRequests handles GET /requests
// @Summary List requests
// @Description List requests filtered by title, description, status, priority, category, author, assignee and creation window
// @Tags requests
// @Produce json
// @Security Bearer
// @Param page query int false "Page number"
// @Param title query string false "Title fragment, case-insensitive"
// @Param status query string false "Status filter"
// @Param priority query string false "Priority filter"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	req, err := parseListRequestsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRequestsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Meta)
}

// AssignRequest handles POST /requests/:id/assign
// @Summary Assign request to the caller
// @Description Assign the request to the authenticated user and their team
// @Tags requests
// @Produce json
// @Security Bearer
// @Param id path int true "Request ID"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /requests/{id}/assign [post]
func (h *RequestHandler) AssignRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AssignRequestCommand{
		RequestID: requestID,
		Viewer:    middleware.ViewerFromContext(c),
	}

	result, err := h.assignRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request assigned successfully", result)
}

// EditRequest handles PUT /requests/:id
// @Summary Edit request
// @Description Update the mutable fields of a request; only the assigned user may edit
// @Tags requests
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Request ID"
// @Param request body EditRequestRequest true "Request changes"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /requests/{id} [put]
func (h *RequestHandler) EditRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EditRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		h.logger.Warnw("invalid request body for edit request", "error", bindErr)
		if err := utils.ValidateStruct(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request data", bindErr.Error()))
		return
	}

	cmd := usecases.EditRequestCommand{
		RequestID:      requestID,
		Viewer:         middleware.ViewerFromContext(c),
		Priority:       req.Priority,
		Status:         req.Status,
		CategoryID:     req.CategoryID,
		AssignedUserID: req.AssignedUserID,
		AssignedTeamID: req.AssignedTeamID,
	}

	result, err := h.editRequestUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request updated successfully", result)
}

// AddResponse handles POST /requests/:id/responses
// @Summary Add a response
// @Description Append a response to the request discussion thread
// @Tags requests
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Request ID"
// @Param response body AddResponseRequest true "Response text"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /requests/{id}/responses [post]
func (h *RequestHandler) AddResponse(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddResponseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		if err := utils.ValidateStruct(&req); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request data", bindErr.Error()))
		return
	}

	cmd := usecases.AddResponseCommand{
		RequestID: requestID,
		Viewer:    middleware.ViewerFromContext(c),
		Text:      req.Text,
	}

	result, err := h.addResponseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Response added successfully")
}

// DownloadAttachment handles GET /attachments/:id
// @Summary Download attachment
// @Description Stream the stored attachment content
// @Tags attachments
// @Produce octet-stream
// @Security Bearer
// @Param id path int true "Attachment ID"
// @Success 200 {file} binary
// @Failure 404 {object} utils.APIResponse
// @Router /attachments/{id} [get]
func (h *RequestHandler) DownloadAttachment(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid attachment ID"))
		return
	}

	result, err := h.getAttachmentUC.Execute(c.Request.Context(), usecases.GetAttachmentQuery{AttachmentID: uint(id)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// DeleteRequest handles DELETE /requests/:id
// @Summary Delete request
// @Description Delete a request with its responses and attachments; administrators only
// @Tags requests
// @Produce json
// @Security Bearer
// @Param id path int true "Request ID"
// @Success 204
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /requests/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	requestID, err := parseRequestID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteRequestCommand{
		RequestID: requestID,
		Viewer:    middleware.ViewerFromContext(c),
	}

	if err := h.deleteRequestUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseRequestID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid request ID")
	}
	return uint(id), nil
}
