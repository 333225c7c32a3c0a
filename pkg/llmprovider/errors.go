package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrNoProvidersConfigured = errors.New("llmprovider: no providers configured")
	ErrAllProvidersFailed    = errors.New("llmprovider: all providers failed")
	ErrProviderRateLimited   = errors.New("llmprovider: rate limited")

	// ErrInvalidRequest is returned for a nil request or one without any
	// non-empty message.
	ErrInvalidRequest = errors.New("llmprovider: invalid request")

	// ErrProviderTimeout marks a chain cut short by Config.MaxTotalTimeout.
	ErrProviderTimeout = errors.New("llmprovider: timeout")
)

// ProviderError ties a failure to the provider that produced it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
