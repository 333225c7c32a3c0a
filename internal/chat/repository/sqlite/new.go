package sqlite

import (
	"database/sql"
	"fmt"

	"support-chat-backend/internal/chat/repository"
	"support-chat-backend/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the chat domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("chat/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/sqlite.%s", method)
}
