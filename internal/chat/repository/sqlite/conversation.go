package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"support-chat-backend/internal/chat/repository"
	"support-chat-backend/internal/model"
)

func (r *implRepository) CreateConversation(ctx context.Context) (model.Conversation, error) {
	const query = `INSERT INTO conversations (id, created_at) VALUES (?, ?)`

	c := model.Conversation{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.CreatedAt.UnixMilli()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateConversation"), err)
		return model.Conversation{}, repository.ErrFailedToInsert
	}
	return c, nil
}

func (r *implRepository) ConversationExists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM conversations WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ConversationExists"), err)
		return false, repository.ErrFailedToGet
	}
	return exists, nil
}
