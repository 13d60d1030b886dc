package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-review/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		reqID := RequestIDFromContext(c)

		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": latency.Milliseconds(),
			"request_id": reqID,
		}
		if userID := c.GetString(userIDKey); userID != "" {
			fields["user_id"] = userID
		}
		telemetry.Info("http.request", fields)
	}
}
