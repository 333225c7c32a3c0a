package model

import "time"

// Conversation is a chat session. Its ID is the sessionId clients send back.
type Conversation struct {
	ID        string
	CreatedAt time.Time
}
