package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"support-chat-backend/config"
	"support-chat-backend/internal/chat"
	"support-chat-backend/internal/chat/repository"
	chatPostgre "support-chat-backend/internal/chat/repository/postgre"
	chatSQLite "support-chat-backend/internal/chat/repository/sqlite"
	"support-chat-backend/internal/intent"
	"support-chat-backend/internal/responder"
	"support-chat-backend/pkg/llmprovider"
	"support-chat-backend/pkg/log"
	"support-chat-backend/pkg/postgres"
	"support-chat-backend/pkg/sqlite"
)

func openStorage(ctx context.Context, cfg config.DatabaseConfig, l log.Logger) (*sql.DB, repository.Repository, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.URL)
		if err != nil {
			return nil, nil, err
		}
		l.Infof(ctx, "Using SQLite database at %s", cfg.URL)
		return db, chatSQLite.New(db, l), nil
	default:
		db, err := postgres.Connect(ctx, postgres.Config{
			URL:             cfg.URL,
			MaxOpenConns:    cfg.MaxOpenConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		l.Info(ctx, "Connected to PostgreSQL")
		return db, chatPostgre.New(db, l), nil
	}
}

func newResponder(ctx context.Context, cfg *config.Config, l log.Logger) (chat.Responder, error) {
	if cfg.LLM.MockMode {
		return newMockResponder(ctx, cfg, l)
	}

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, err
	}

	retryDelay, err := parseDuration(cfg.LLM.RetryDelay, time.Second)
	if err != nil {
		return nil, fmt.Errorf("llm.retry_delay: %w", err)
	}
	maxTotal, err := parseDuration(cfg.LLM.MaxTotalTimeout, 45*time.Second)
	if err != nil {
		return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, l)

	l.Infof(ctx, "LLM responder ready with %d provider(s)", len(providers))
	return responder.NewLLM(manager, l), nil
}

func newMockResponder(ctx context.Context, cfg *config.Config, l log.Logger) (chat.Responder, error) {
	store, err := intent.NewSessionStore(cfg.Chat.SessionCacheSize)
	if err != nil {
		return nil, err
	}

	var templates intent.Templates
	if cfg.Chat.TemplatesPath != "" {
		if templates, err = intent.LoadTemplatesFile(cfg.Chat.TemplatesPath); err != nil {
			return nil, err
		}
		l.Infof(ctx, "Loaded reply templates from %s", cfg.Chat.TemplatesPath)
	}

	selector, err := intent.NewSelector(intent.SelectorConfig{
		Store:     store,
		Templates: templates,
	})
	if err != nil {
		return nil, err
	}

	l.Info(ctx, "Mock mode enabled, replies come from canned templates")
	return responder.NewMock(responder.MockConfig{
		Selector:   selector,
		MinLatency: cfg.LLM.MockMinLatency,
		MaxLatency: cfg.LLM.MockMaxLatency,
	}, l)
}

func parseDuration(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	return time.ParseDuration(s)
}
