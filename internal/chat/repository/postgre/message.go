package postgre

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
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + messageColumns

	m, err := scanMessage(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.ConversationID, string(opt.Sender), opt.Text, time.Now().UTC(),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return model.Message{}, repository.ErrFailedToInsert
	}
	return m, nil
}

func (r *implRepository) ListRecentMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	const query = `
		SELECT ` + messageColumns + ` FROM (
			SELECT seq, ` + messageColumns + `
			FROM messages
			WHERE conversation_id = $1
			ORDER BY created_at DESC, seq DESC
			LIMIT $2
		) recent
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
		WHERE conversation_id = $1
		ORDER BY created_at ASC, seq ASC`

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
		m, err := scanMessage(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repository.ErrFailedToList
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repository.ErrFailedToList
	}
	return messages, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(s scanner) (model.Message, error) {
	var (
		m      model.Message
		sender string
	)
	if err := s.Scan(&m.ID, &m.ConversationID, &sender, &m.Text, &m.CreatedAt); err != nil {
		return model.Message{}, err
	}
	m.Sender = model.Sender(sender)
	return m, nil
}
