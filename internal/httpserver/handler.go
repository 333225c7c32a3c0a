package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "support-chat-backend/internal/chat/delivery/http"
	"support-chat-backend/pkg/response"
)

const routeNotFound = "Route not found"

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	srv.gin.NoRoute(func(c *gin.Context) {
		response.NotFound(c, routeNotFound)
	})
}

func (srv *HTTPServer) registerMiddlewares() {
	mw := srv.middleware
	srv.gin.Use(
		mw.RequestLogger(),
		mw.Recovery(),
		mw.CORS(),
	)

	srv.l.Infof(context.Background(), "CORS mode: %s", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes. Domain traffic is rate
// limited; system routes are not.
func (srv *HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("", srv.middleware.RateLimit())

	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h)

	srv.l.Infof(context.Background(), "Chat routes registered at /chat")
}
