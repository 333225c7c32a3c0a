package gemini

import (
	"fmt"
	"net/http"
)

// APIError is a non-200 answer from the Gemini API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}

// RateLimited reports whether the API rejected the call for quota reasons.
func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}
