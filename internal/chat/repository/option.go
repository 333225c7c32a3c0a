package repository

import "support-chat-backend/internal/model"

// CreateMessageOptions holds parameters for inserting a Message.
type CreateMessageOptions struct {
	ConversationID string
	Sender         model.Sender
	Text           string
}

// ListMessagesOptions selects messages of one conversation.
type ListMessagesOptions struct {
	ConversationID string
	Limit          int
}
