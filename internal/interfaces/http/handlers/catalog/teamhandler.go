package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mnsternik/issue-manager/internal/application/team"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
	"github.com/mnsternik/issue-manager/internal/shared/utils"
)

type TeamHandler struct {
	service *team.Service
	logger  logger.Interface
}

func NewTeamHandler(service *team.Service) *TeamHandler {
	return &TeamHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

type TeamRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Security Bearer
// @Param team body TeamRequest true "Team data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create team", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request data", err.Error()))
		return
	}

	result, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Team created successfully")
}

// RenameTeam handles PUT /teams/:id
// @Summary Rename a team
// @Tags teams
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Team ID"
// @Param team body TeamRequest true "Team data"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /teams/{id} [put]
func (h *TeamHandler) RenameTeam(c *gin.Context) {
	teamID, err := parseCatalogID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request data", err.Error()))
		return
	}

	result, err := h.service.Rename(c.Request.Context(), teamID, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Team renamed successfully", result)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Tags teams
// @Produce json
// @Security Bearer
// @Param id path int true "Team ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID, err := parseCatalogID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), teamID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListTeams handles GET /teams
// @Summary List teams
// @Tags teams
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
