package chat

import "support-chat-backend/internal/model"

// --- UseCase Inputs ---

type SendMessageInput struct {
	Message   string
	SessionID string
}

// --- UseCase Outputs ---

type SendMessageOutput struct {
	Reply     string
	SessionID string
}

type HistoryOutput struct {
	SessionID string
	Messages  []model.Message
}
