package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS echoes allowed origins back. Credentials are only allowed for origins
// listed explicitly; a "*" entry matches any origin without credentials.
func (mw Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" {
			wildcard, explicit := mw.matchOrigin(origin)
			if wildcard || explicit {
				h := c.Writer.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
				h.Set("Access-Control-Expose-Headers", "X-Request-ID")
				h.Add("Vary", "Origin")
				if explicit {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (mw Middleware) matchOrigin(origin string) (wildcard, explicit bool) {
	for _, o := range mw.origins {
		switch o {
		case origin:
			explicit = true
		case "*":
			wildcard = true
		}
	}
	return wildcard, explicit
}
