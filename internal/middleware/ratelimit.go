package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

// RateLimit creates a Gin middleware for rate limiting requests per client IP.
// It sets the X-RateLimit-* headers on every response.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return limitergin.NewMiddleware(limiterInstance,
		limitergin.WithKeyGetter(func(c *gin.Context) string {
			return c.ClientIP()
		}),
		limitergin.WithErrorHandler(func(c *gin.Context, err error) {
			GetLoggerFromContext(c).Error("Failed to get rate limit context",
				slog.String("ip", c.ClientIP()), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.ErrorResponse{Success: false, Message: "Internal server error during rate limit check"})
		}),
		limitergin.WithLimitReachedHandler(func(c *gin.Context) {
			GetLoggerFromContext(c).Warn("Rate limit exceeded", slog.String("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.ErrorResponse{Success: false, Message: "Too many requests. Please try again later."})
		}),
	)
}
