package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avikravi/card-inventory-app/internal/logger"
	"github.com/avikravi/card-inventory-app/internal/uuid"
)

const requestIDKey = "requestID"

// RequestLogging logs every request with a request ID, method, path, status,
// latency, and client IP. An inbound X-Request-ID header is reused when it is
// a well-formed UUID so callers can correlate their own traces; otherwise a
// fresh ID is minted.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if !uuid.IsValid(requestID) {
			requestID = uuid.New()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)
		log := logger.Get()
		log.Infow("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}
