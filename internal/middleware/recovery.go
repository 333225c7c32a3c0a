package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"support-chat-backend/pkg/response"
)

// Recovery turns a panic in a handler into a 500 with the standard envelope.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				mw.l.Errorf(c.Request.Context(), "middleware.Recovery: panic: %v\n%s", rec, debug.Stack())
				response.InternalError(c, fmt.Errorf("panic: %v", rec))
			}
		}()
		c.Next()
	}
}
