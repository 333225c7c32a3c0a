package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"support-chat-backend/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "support-chat-backend"

	readyTimeout = 2 * time.Second
)

type healthResp struct {
	Status    string            `json:"status"`
	Timestamp response.DateTime `json:"timestamp" swaggertype:"string"`
	Version   string            `json:"version,omitempty"`
	Service   string            `json:"service,omitempty"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthResp{
		Status:    "ok",
		Timestamp: response.DateTime(time.Now()),
		Version:   HealthVersion,
		Service:   ServiceName,
	})
}

// readyCheck reports ready only when the database answers a ping.
// @Summary Readiness Check
// @Description Check if the API and its database are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp} "API is ready"
// @Failure 503 {object} response.Resp "Database unavailable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if srv.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := srv.db.PingContext(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: database ping failed: %v", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "Database unavailable",
			})
			return
		}
	}

	response.OK(c, healthResp{
		Status:    "ready",
		Timestamp: response.DateTime(time.Now()),
		Version:   HealthVersion,
		Service:   ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthResp{
		Status:    "alive",
		Timestamp: response.DateTime(time.Now()),
	})
}
