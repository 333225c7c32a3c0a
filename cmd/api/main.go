package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"support-chat-backend/config"
	_ "support-chat-backend/docs" // Swagger docs
	"support-chat-backend/internal/chat/usecase"
	"support-chat-backend/internal/httpserver"
	"support-chat-backend/internal/middleware"
	"support-chat-backend/pkg/log"
)

// @title       Support Chat API
// @description Customer support chat backend with a rule-based mock agent and LLM providers.
// @version     1
// @host        localhost:3001
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting support chat backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, repo, err := openStorage(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := repo.Migrate(ctx); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}

	// 4. Responder
	responder, err := newResponder(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize responder: ", err)
		return
	}

	// 5. Chat domain
	chatUC := usecase.New(repo, responder, usecase.Config{
		HistoryLimit:     cfg.Chat.HistoryLimit,
		MaxMessageLength: cfg.Chat.MaxMessageLength,
	}, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Middleware: middleware.Config{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
			Burst:            cfg.RateLimit.Burst,
			MaxClients:       cfg.RateLimit.MaxClients,
			ClientRetention:  cfg.RateLimit.ClientRetention,
		},
		ChatUseCase: chatUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
