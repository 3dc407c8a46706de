package ratelimit

import (
	"fmt"

	"ops-dashboard/internal/apierrors"
	"ops-dashboard/internal/observability"

	"github.com/gin-gonic/gin"
)

// KeyFunc derives the rate limit key of a request
type KeyFunc func(c *gin.Context) string

// ByClientIP keys requests of one endpoint by caller address
func ByClientIP(scope string) KeyFunc {
	return func(c *gin.Context) string {
		return scope + ":" + c.ClientIP()
	}
}

// Middleware creates a Gin middleware allowing limit requests per minute per key
func (s *Service) Middleware(limit int, key KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		result := s.CheckRateLimit(ctx, key(c), limit)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			ctx = observability.WithFields(ctx,
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)
			s.logger.Warn(ctx, "rate limit exceeded")

			apierrors.RespondWithError(c, apierrors.TooManyRequests("Too many attempts, try again later"))
			return
		}

		c.Next()
	}
}
