package usecase

import (
	"context"
	"fmt"

	"support-chat-backend/internal/chat"
	repo "support-chat-backend/internal/chat/repository"
	"support-chat-backend/internal/model"
)

// SendMessage persists the user's message, asks the responder for a reply
// using the recent history and persists the reply.
func (uc *implUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	text, err := uc.validateMessage(input.Message)
	if err != nil {
		return chat.SendMessageOutput{}, err
	}

	sessionID, err := uc.resolveSession(ctx, input.SessionID)
	if err != nil {
		return chat.SendMessageOutput{}, err
	}

	if _, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		ConversationID: sessionID,
		Sender:         model.SenderUser,
		Text:           text,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage CreateMessage(user): %v", err)
		return chat.SendMessageOutput{}, err
	}

	history, err := uc.repo.ListRecentMessages(ctx, repo.ListMessagesOptions{
		ConversationID: sessionID,
		Limit:          uc.cfg.HistoryLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage ListRecentMessages: %v", err)
		return chat.SendMessageOutput{}, err
	}

	reply, err := uc.responder.Generate(ctx, history)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage Generate: session=%s: %v", sessionID, err)
		return chat.SendMessageOutput{}, fmt.Errorf("%w: %w", chat.ErrReplyFailed, err)
	}

	if _, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		ConversationID: sessionID,
		Sender:         model.SenderAI,
		Text:           reply,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage CreateMessage(ai): %v", err)
		return chat.SendMessageOutput{}, err
	}

	return chat.SendMessageOutput{Reply: reply, SessionID: sessionID}, nil
}

// resolveSession returns the conversation to append to, creating one when
// the client did not send a session id.
func (uc *implUseCase) resolveSession(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		c, err := uc.repo.CreateConversation(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "uc.SendMessage CreateConversation: %v", err)
			return "", err
		}
		uc.l.Infof(ctx, "uc.SendMessage: started conversation %s", c.ID)
		return c.ID, nil
	}

	if err := uc.ensureConversation(ctx, sessionID); err != nil {
		return "", err
	}
	return sessionID, nil
}
