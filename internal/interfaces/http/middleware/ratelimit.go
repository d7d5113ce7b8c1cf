package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mnsternik/issue-manager/internal/infrastructure/ratelimit"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
	"github.com/mnsternik/issue-manager/internal/shared/utils"
)

// RateLimit enforces per-client request limits. Authenticated clients are
// keyed by their viewer ID, anonymous clients by IP.
func RateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if viewer := ViewerFromContext(c); viewer != nil {
			key = viewer.ID
		}

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			// If the limiter backend is unavailable, let traffic through.
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
