package http

import (
	"github.com/gin-gonic/gin"

	"support-chat-backend/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Stores the customer's message and returns the agent's reply. Omit sessionId to start a new conversation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message and optional session id"
// @Success     200  {object} response.Resp{data=sendMessageResp}
// @Failure     400  {object} response.Resp "Validation failed"
// @Failure     404  {object} response.Resp "Session not found"
// @Failure     429  {object} response.Resp "Too many requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Failure     503  {object} response.Resp "Reply service unavailable"
// @Router      /chat/message [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.http.SendMessage: invalid request: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.SendMessage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// History godoc
// @Summary     Get conversation history
// @Description Returns every message of a conversation, oldest first. Timestamps are unix milliseconds.
// @Tags        Chat
// @Produce     json
// @Param       sessionId path string true "Session id (UUID)"
// @Success     200 {object} response.Resp{data=historyResp}
// @Failure     400 {object} response.Resp "Invalid sessionId format"
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /chat/history/{sessionId} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, req.SessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
