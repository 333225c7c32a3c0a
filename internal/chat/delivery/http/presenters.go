package http

import (
	"strings"

	"support-chat-backend/internal/chat"
	"support-chat-backend/internal/model"
	"support-chat-backend/pkg/response"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Message   string `json:"message"   binding:"required"`
	SessionID string `json:"sessionId" binding:"omitempty,uuid"`
}

func (r sendMessageReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errMessageEmpty
	}
	return nil
}

func (r sendMessageReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		Message:   r.Message,
		SessionID: r.SessionID,
	}
}

type historyReq struct {
	SessionID string `uri:"sessionId" binding:"required,uuid"`
}

// --- Response DTOs ---

type sendMessageResp struct {
	Reply     string `json:"reply"`
	SessionID string `json:"sessionId"`
}

func (h *handler) newSendMessageResp(out chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		Reply:     out.Reply,
		SessionID: out.SessionID,
	}
}

type messageResp struct {
	ID        string             `json:"id"`
	Sender    model.Sender       `json:"sender"`
	Text      string             `json:"text"`
	Timestamp response.UnixMilli `json:"timestamp" swaggertype:"integer"`
}

type historyResp struct {
	Messages  []messageResp `json:"messages"`
	SessionID string        `json:"sessionId"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	messages := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		messages[i] = messageResp{
			ID:        m.ID,
			Sender:    m.Sender,
			Text:      m.Text,
			Timestamp: response.UnixMilli(m.CreatedAt),
		}
	}
	return historyResp{
		Messages:  messages,
		SessionID: out.SessionID,
	}
}
