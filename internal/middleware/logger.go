package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"support-chat-backend/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id (taken from X-Request-ID when
// the caller sends one) and logs one line per request.
func (mw Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= 500:
			mw.l.Error(ctx, append([]any{"request completed"}, fields...)...)
		case status >= 400:
			mw.l.Warn(ctx, append([]any{"request completed"}, fields...)...)
		default:
			mw.l.Info(ctx, append([]any{"request completed"}, fields...)...)
		}
	}
}
