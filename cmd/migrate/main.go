package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"support-chat-backend/config"
	"support-chat-backend/internal/chat/repository"
	chatPostgre "support-chat-backend/internal/chat/repository/postgre"
	chatSQLite "support-chat-backend/internal/chat/repository/sqlite"
	"support-chat-backend/pkg/log"
	"support-chat-backend/pkg/postgres"
	"support-chat-backend/pkg/sqlite"
)

// main applies pending schema migrations and exits. The API applies them on
// boot as well; this binary exists for deploys that migrate ahead of rollout.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		db   *sql.DB
		repo repository.Repository
	)
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err = sqlite.Open(ctx, cfg.Database.URL)
		if err == nil {
			repo = chatSQLite.New(db, logger)
		}
	default:
		db, err = postgres.Connect(ctx, postgres.Config{URL: cfg.Database.URL})
		if err == nil {
			repo = chatPostgre.New(db, logger)
		}
	}
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repo.Migrate(ctx); err != nil {
		logger.Error(ctx, "Migration failed: ", err)
		db.Close()
		os.Exit(1)
	}
	logger.Infof(ctx, "Database (%s) is up to date", cfg.Database.Driver)
}
