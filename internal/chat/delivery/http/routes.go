package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the chat endpoints on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	c := rg.Group("/chat")
	{
		c.POST("/message", h.SendMessage)
		c.GET("/history/:sessionId", h.History)
	}
}
