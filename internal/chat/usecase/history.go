package usecase

import (
	"context"

	"support-chat-backend/internal/chat"
)

// History returns the full transcript of a conversation.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	if err := uc.ensureConversation(ctx, sessionID); err != nil {
		return chat.HistoryOutput{}, err
	}

	messages, err := uc.repo.ListMessages(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListMessages: %v", err)
		return chat.HistoryOutput{}, err
	}

	return chat.HistoryOutput{SessionID: sessionID, Messages: messages}, nil
}
