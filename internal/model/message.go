package model

import "time"

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderAI
}

// Message is one persisted chat turn.
type Message struct {
	ID             string
	ConversationID string
	Sender         Sender
	Text           string
	CreatedAt      time.Time
}
