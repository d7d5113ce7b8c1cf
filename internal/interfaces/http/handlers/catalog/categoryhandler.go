package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mnsternik/issue-manager/internal/application/category"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
	"github.com/mnsternik/issue-manager/internal/shared/utils"
)

type CategoryHandler struct {
	service *category.Service
	logger  logger.Interface
}

func NewCategoryHandler(service *category.Service) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// CreateCategory handles POST /categories
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param category body CategoryRequest true "Category data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request data", err.Error()))
		return
	}

	result, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// RenameCategory handles PUT /categories/:id
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Category ID"
// @Param category body CategoryRequest true "Category data"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) RenameCategory(c *gin.Context) {
	categoryID, err := parseCatalogID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request data", err.Error()))
		return
	}

	result, err := h.service.Rename(c.Request.Context(), categoryID, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category renamed successfully", result)
}

// DeleteCategory handles DELETE /categories/:id
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Security Bearer
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parseCatalogID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), categoryID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListCategories handles GET /categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseCatalogID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ID")
	}
	return uint(id), nil
}
