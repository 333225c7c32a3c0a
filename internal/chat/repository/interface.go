package repository

import (
	"context"

	"support-chat-backend/internal/model"
)

// Repository is the composed interface for the chat data store.
type Repository interface {
	ConversationRepository
	MessageRepository

	// Migrate creates or upgrades the schema. It is safe to call repeatedly.
	Migrate(ctx context.Context) error
}

type ConversationRepository interface {
	CreateConversation(ctx context.Context) (model.Conversation, error)
	ConversationExists(ctx context.Context, id string) (bool, error)
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.Message, error)
	// ListRecentMessages returns the newest opt.Limit messages in chronological order.
	ListRecentMessages(ctx context.Context, opt ListMessagesOptions) ([]model.Message, error)
	// ListMessages returns every message of a conversation in creation order.
	ListMessages(ctx context.Context, conversationID string) ([]model.Message, error)
}
