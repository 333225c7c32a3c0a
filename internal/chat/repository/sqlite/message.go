package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"support-chat-backend/internal/chat/repository"
	"support-chat-backend/internal/model"
)

const messageColumns = `id, conversation_id, sender, text, created_at`

func (r *implRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.Message, error) {
	const query = `
		INSERT INTO messages (id, conversation_id, sender, text, created_at)
		VALUES (?, ?, ?, ?, ?)`

	m := model.Message{
		ID:             uuid.NewString(),
		ConversationID: opt.ConversationID,
		Sender:         opt.Sender,
		Text:           opt.Text,
		CreatedAt:      time.Now().UTC().Truncate(time.Millisecond),
	}
	_, err := r.db.ExecContext(ctx, query, m.ID, m.ConversationID, string(m.Sender), m.Text, m.CreatedAt.UnixMilli())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return model.Message{}, repository.ErrFailedToInsert
	}
	return m, nil
}

func (r *implRepository) ListRecentMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	// rowid breaks ties between messages written in the same millisecond
	const query = `
		SELECT ` + messageColumns + ` FROM (
			SELECT rowid AS seq, ` + messageColumns + `
			FROM messages
			WHERE conversation_id = ?
			ORDER BY created_at DESC, seq DESC
			LIMIT ?
		)
		ORDER BY created_at ASC, seq ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.ConversationID, opt.Limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecentMessages"), err)
		return nil, repository.ErrFailedToList
	}
	return r.collect(ctx, "ListRecentMessages", rows)
}

func (r *implRepository) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	const query = `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE conversation_id = ?
		ORDER BY created_at ASC, rowid ASC`

	rows, err := r.db.QueryContext(ctx, query, conversationID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repository.ErrFailedToList
	}
	return r.collect(ctx, "ListMessages", rows)
}

func (r *implRepository) collect(ctx context.Context, method string, rows *sql.Rows) ([]model.Message, error) {
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var (
			m         model.Message
			sender    string
			createdAt int64
		)
		if err := rows.Scan(&m.ID, &m.ConversationID, &sender, &m.Text, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repository.ErrFailedToList
		}
		m.Sender = model.Sender(sender)
		m.CreatedAt = time.UnixMilli(createdAt).UTC()
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repository.ErrFailedToList
	}
	return messages, nil
}
