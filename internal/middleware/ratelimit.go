package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/contacts-api/internal/ratelimit"
)

// RateLimitMiddleware ограничивает частоту запросов отдельно по клиенту и маршруту
func RateLimitMiddleware(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "rate limiter unavailable"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"detail": "Too Many Requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
