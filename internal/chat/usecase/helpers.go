package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"support-chat-backend/internal/chat"
)

// validateMessage enforces the length limit in characters on the raw input
// and returns the trimmed text.
func (uc *implUseCase) validateMessage(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(raw) > uc.cfg.MaxMessageLength {
		return "", &chat.MessageTooLongError{Max: uc.cfg.MaxMessageLength}
	}
	return text, nil
}

func (uc *implUseCase) ensureConversation(ctx context.Context, sessionID string) error {
	if _, err := uuid.Parse(sessionID); err != nil {
		return chat.ErrInvalidSessionID
	}

	exists, err := uc.repo.ConversationExists(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ensureConversation ConversationExists: %v", err)
		return err
	}
	if !exists {
		return chat.ErrSessionNotFound
	}
	return nil
}
