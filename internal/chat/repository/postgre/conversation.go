package postgre

import (
	"context"
	"time"

	"github.com/google/uuid"

	"support-chat-backend/internal/chat/repository"
	"support-chat-backend/internal/model"
)

func (r *implRepository) CreateConversation(ctx context.Context) (model.Conversation, error) {
	const query = `
		INSERT INTO conversations (id, created_at)
		VALUES ($1, $2)
		RETURNING id, created_at`

	var c model.Conversation
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), time.Now().UTC()).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateConversation"), err)
		return model.Conversation{}, repository.ErrFailedToInsert
	}
	return c, nil
}

func (r *implRepository) ConversationExists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM conversations WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ConversationExists"), err)
		return false, repository.ErrFailedToGet
	}
	return exists, nil
}
