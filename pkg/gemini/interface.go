// Package gemini is a minimal client for the Gemini generateContent REST
// endpoint, used to produce support replies in non-mock mode.
package gemini

import (
	"context"
	"time"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second
)

// IGemini is the Gemini client contract. Implementations are safe for
// concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a client after validating cfg.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
