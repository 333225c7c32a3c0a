package chat

import (
	"context"

	"support-chat-backend/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// SendMessage stores the user's message, generates a reply and stores it.
	// An empty SessionID starts a new conversation.
	SendMessage(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)

	// History returns every message of a conversation, oldest first.
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
}

// Responder produces the agent's reply from the most recent messages of a
// conversation, oldest first. The last element is the message being answered.
type Responder interface {
	Generate(ctx context.Context, history []model.Message) (string, error)
}
