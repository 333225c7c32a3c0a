package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"support-chat-backend/internal/chat"
	"support-chat-backend/internal/middleware"
	"support-chat-backend/pkg/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 60 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Pinger reports whether the database is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	db         Pinger
	middleware middleware.Middleware
	chatUC     chat.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB          Pinger
	Middleware  middleware.Config
	ChatUseCase chat.UseCase
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		chatUC:      cfg.ChatUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.middleware = middleware.New(logger, cfg.Middleware)
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
