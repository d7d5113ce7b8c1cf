package routes

import (
	"github.com/gin-gonic/gin"

	requesthandlers "github.com/mnsternik/issue-manager/internal/interfaces/http/handlers/request"
	"github.com/mnsternik/issue-manager/internal/interfaces/http/middleware"
	"github.com/mnsternik/issue-manager/internal/shared/constants"
)

type RequestRouteConfig struct {
	RequestHandler *requesthandlers.RequestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRequestRoutes(api *gin.RouterGroup, config *RequestRouteConfig) {
	requests := api.Group("/requests")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		requests.POST("",
			config.AuthMiddleware.RequireAuth(),
			config.RequestHandler.CreateRequest)
		requests.GET("",
			config.AuthMiddleware.RequireAuth(),
			config.RequestHandler.ListRequests)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		requests.POST("/:id/assign",
			config.AuthMiddleware.RequireAuth(),
			config.RequestHandler.AssignRequest)
		requests.POST("/:id/responses",
			config.AuthMiddleware.RequireAuth(),
			config.RequestHandler.AddResponse)

		// Generic parameterized routes (must come LAST)
		// Detail view resolves permissions from the optional viewer, so
		// anonymous access is allowed here.
		requests.GET("/:id",
			config.AuthMiddleware.OptionalAuth(),
			config.RequestHandler.GetRequest)
		requests.PUT("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.RequestHandler.EditRequest)
		requests.DELETE("/:id",
			config.AuthMiddleware.RequireAuth(),
			config.AuthMiddleware.RequireRole(constants.RoleAdmin),
			config.RequestHandler.DeleteRequest)
	}

	attachments := api.Group("/attachments")
	attachments.Use(config.AuthMiddleware.RequireAuth())
	{
		attachments.GET("/:id", config.RequestHandler.DownloadAttachment)
	}
}
