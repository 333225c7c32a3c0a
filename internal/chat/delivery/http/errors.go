package http

import (
	"errors"
	"fmt"
	"net/http"

	"support-chat-backend/internal/chat"
	"support-chat-backend/internal/chat/repository"
	pkgErrors "support-chat-backend/pkg/errors"
)

var (
	errMessageRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Message is required and must be a string")
	errMessageEmpty     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Message cannot be empty")
	errSessionIDType    = pkgErrors.NewHTTPError(http.StatusBadRequest, "SessionId must be a string")
	errSessionIDInvalid = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid sessionId format")
	errSessionNotFound  = pkgErrors.NewHTTPError(http.StatusNotFound, "Session not found")
	errReplyUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Our assistant is temporarily unavailable. Please try again shortly.")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a generic 500 so internals never leak to clients.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, chat.ErrInvalidSessionID):
		return errSessionIDInvalid
	case errors.Is(err, chat.ErrEmptyMessage):
		return errMessageEmpty
	case errors.Is(err, chat.ErrMessageTooLong):
		return messageTooLong(err)
	case errors.Is(err, chat.ErrReplyFailed):
		return errReplyUnavailable
	case errors.Is(err, repository.ErrFailedToInsert):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to save message")
	case errors.Is(err, repository.ErrFailedToGet):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to check conversation")
	case errors.Is(err, repository.ErrFailedToList):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to fetch messages")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// messageTooLong renders the limit carried by err into the client message.
func messageTooLong(err error) error {
	var tooLong *chat.MessageTooLongError
	if errors.As(err, &tooLong) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Message is too long (max %d characters)", tooLong.Max))
	}
	return pkgErrors.NewHTTPError(http.StatusBadRequest, "Message is too long")
}
