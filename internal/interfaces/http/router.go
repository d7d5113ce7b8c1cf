package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	categoryapp "github.com/mnsternik/issue-manager/internal/application/category"
	"github.com/mnsternik/issue-manager/internal/application/request/usecases"
	teamapp "github.com/mnsternik/issue-manager/internal/application/team"
	domainrequest "github.com/mnsternik/issue-manager/internal/domain/request"
	"github.com/mnsternik/issue-manager/internal/infrastructure/auth"
	"github.com/mnsternik/issue-manager/internal/infrastructure/config"
	"github.com/mnsternik/issue-manager/internal/infrastructure/ratelimit"
	"github.com/mnsternik/issue-manager/internal/infrastructure/repository"
	cataloghandlers "github.com/mnsternik/issue-manager/internal/interfaces/http/handlers/catalog"
	requesthandlers "github.com/mnsternik/issue-manager/internal/interfaces/http/handlers/request"
	"github.com/mnsternik/issue-manager/internal/interfaces/http/middleware"
	"github.com/mnsternik/issue-manager/internal/interfaces/http/routes"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
	"github.com/mnsternik/issue-manager/internal/shared/services/markdown"

	_ "github.com/mnsternik/issue-manager/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	engine          *gin.Engine
	requestHandler  *requesthandlers.RequestHandler
	categoryHandler *cataloghandlers.CategoryHandler
	teamHandler     *cataloghandlers.TeamHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimiter     ratelimit.RateLimiter
	cfg             *config.Config
	log             logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	requestRepo := repository.NewRequestRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	markdownService := markdown.NewService()
	policy := domainrequest.NewAttachmentPolicy(cfg.Uploads.MaxSizeBytes, cfg.Uploads.AllowedExtensions)

	createRequestUC := usecases.NewCreateRequestUseCase(requestRepo, categoryRepo, policy, log)
	getRequestUC := usecases.NewGetRequestUseCase(requestRepo, responseRepo, attachmentRepo, markdownService, log)
	listRequestsUC := usecases.NewListRequestsUseCase(requestRepo, log)
	assignRequestUC := usecases.NewAssignRequestUseCase(requestRepo, notificationRepo, log)
	editRequestUC := usecases.NewEditRequestUseCase(requestRepo, categoryRepo, log)
	addResponseUC := usecases.NewAddResponseUseCase(requestRepo, responseRepo, notificationRepo, log)
	getAttachmentUC := usecases.NewGetAttachmentUseCase(attachmentRepo, log)
	deleteRequestUC := usecases.NewDeleteRequestUseCase(requestRepo, log)

	requestHandler := requesthandlers.NewRequestHandler(
		createRequestUC,
		getRequestUC,
		listRequestsUC,
		assignRequestUC,
		editRequestUC,
		addResponseUC,
		getAttachmentUC,
		deleteRequestUC,
	)

	categoryHandler := cataloghandlers.NewCategoryHandler(categoryapp.NewService(categoryRepo, log))
	teamHandler := cataloghandlers.NewTeamHandler(teamapp.NewService(teamRepo, log))

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var rateLimiter ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	return &Router{
		engine:          engine,
		requestHandler:  requestHandler,
		categoryHandler: categoryHandler,
		teamHandler:     teamHandler,
		authMiddleware:  authMiddleware,
		rateLimiter:     rateLimiter,
		cfg:             cfg,
		log:             log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	if r.rateLimiter != nil {
		limitCfg := ratelimit.RateLimitConfig{
			RequestsPerMinute: r.cfg.RateLimit.RequestsPerMinute,
			RequestsPerHour:   r.cfg.RateLimit.RequestsPerHour,
		}
		r.engine.Use(middleware.RateLimit(r.rateLimiter, limitCfg, r.log))
	}

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")

	routes.SetupRequestRoutes(api, &routes.RequestRouteConfig{
		RequestHandler: r.requestHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupCatalogRoutes(api, &routes.CatalogRouteConfig{
		CategoryHandler: r.categoryHandler,
		TeamHandler:     r.teamHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
