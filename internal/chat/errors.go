package chat

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrEmptyMessage     = errors.New("message cannot be empty")
	ErrMessageTooLong   = errors.New("message is too long")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrReplyFailed      = errors.New("failed to generate reply")
)

// MessageTooLongError carries the configured limit. It matches
// ErrMessageTooLong under errors.Is.
type MessageTooLongError struct {
	Max int
}

func (e *MessageTooLongError) Error() string {
	return fmt.Sprintf("%v (max %d characters)", ErrMessageTooLong, e.Max)
}

func (e *MessageTooLongError) Is(target error) bool {
	return target == ErrMessageTooLong
}
