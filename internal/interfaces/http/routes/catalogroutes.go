package routes

import (
	"github.com/gin-gonic/gin"

	cataloghandlers "github.com/mnsternik/issue-manager/internal/interfaces/http/handlers/catalog"
	"github.com/mnsternik/issue-manager/internal/interfaces/http/middleware"
	"github.com/mnsternik/issue-manager/internal/shared/constants"
)

type CatalogRouteConfig struct {
	CategoryHandler *cataloghandlers.CategoryHandler
	TeamHandler     *cataloghandlers.TeamHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupCatalogRoutes wires category and team management. Listing is open to
// any authenticated user; mutations are restricted to administrators.
func SetupCatalogRoutes(api *gin.RouterGroup, config *CatalogRouteConfig) {
	adminOnly := config.AuthMiddleware.RequireRole(constants.RoleAdmin)

	categories := api.Group("/categories")
	categories.Use(config.AuthMiddleware.RequireAuth())
	{
		categories.GET("", config.CategoryHandler.ListCategories)
		categories.POST("", adminOnly, config.CategoryHandler.CreateCategory)
		categories.PUT("/:id", adminOnly, config.CategoryHandler.RenameCategory)
		categories.DELETE("/:id", adminOnly, config.CategoryHandler.DeleteCategory)
	}

	teams := api.Group("/teams")
	teams.Use(config.AuthMiddleware.RequireAuth())
	{
		teams.GET("", config.TeamHandler.ListTeams)
		teams.POST("", adminOnly, config.TeamHandler.CreateTeam)
		teams.PUT("/:id", adminOnly, config.TeamHandler.RenameTeam)
		teams.DELETE("/:id", adminOnly, config.TeamHandler.DeleteTeam)
	}
}
