package sqlite

import (
	"context"

	"support-chat-backend/internal/chat/repository"
)

// Timestamps are unix milliseconds.
var migrations = []repository.Migration{
	{
		Version: 1,
		Name:    "create_conversations_and_messages",
		SQL: `
			CREATE TABLE IF NOT EXISTS conversations (
				id         TEXT PRIMARY KEY,
				created_at INTEGER NOT NULL
			);

			CREATE TABLE IF NOT EXISTS messages (
				id              TEXT PRIMARY KEY,
				conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
				sender          TEXT NOT NULL CHECK (sender IN ('user', 'ai')),
				text            TEXT NOT NULL,
				created_at      INTEGER NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_messages_conversation_created
				ON messages (conversation_id, created_at);`,
	},
}

func (r *implRepository) Migrate(ctx context.Context) error {
	if err := repository.ApplyMigrations(ctx, r.db, migrations); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
		return repository.ErrFailedToMigrate
	}
	return nil
}
