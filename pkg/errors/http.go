package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status it should be served with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests, please slow down")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
)

// AsHTTPError reports whether err (or anything it wraps) is an HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
