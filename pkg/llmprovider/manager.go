package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"support-chat-backend/pkg/log"
)

// Config controls how the Manager walks its providers.
type Config struct {
	// FallbackEnabled moves on to the next provider when one fails.
	FallbackEnabled bool
	// RetryAttempts is the number of calls per provider; values below 1 mean 1.
	RetryAttempts int
	// RetryDelay grows linearly with each retry.
	RetryDelay time.Duration
	// MaxTotalTimeout bounds the whole chain. Zero disables it.
	MaxTotalTimeout time.Duration
}

// Manager sends a request to providers in priority order until one answers.
type Manager struct {
	providers []Provider
	cfg       Config
	l         log.Logger
}

func NewManager(providers []Provider, cfg *Config, l log.Logger) *Manager {
	m := &Manager{providers: providers, l: l}
	if cfg != nil {
		m.cfg = *cfg
	}
	return m
}

// GenerateContent returns the first successful response. Failures are
// reported as ErrAllProvidersFailed wrapping the last provider error, or as
// ErrProviderTimeout when MaxTotalTimeout expires first.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if m.cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.MaxTotalTimeout)
		defer cancel()
	}

	var (
		lastErr error
		tried   int
	)
	for _, p := range m.providers {
		if ctx.Err() != nil {
			break
		}
		tried++

		resp, err := m.callProvider(ctx, p, req)
		if err == nil {
			m.logSuccess(ctx, p, resp)
			return resp, nil
		}
		m.l.Warn(ctx, "llmprovider.Manager.GenerateContent: provider failed",
			"provider", p.Name(),
			"model", p.Model(),
			"error", err.Error(),
		)
		lastErr = err

		if !m.cfg.FallbackEnabled {
			break
		}
	}

	if ctx.Err() != nil && m.cfg.MaxTotalTimeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("%w: gave up after %d of %d provider(s) in %s: %w",
			ErrProviderTimeout, tried, len(m.providers), m.cfg.MaxTotalTimeout, ctx.Err())
	}
	if lastErr == nil {
		lastErr = ctx.Err()
	}
	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// callProvider retries p up to RetryAttempts times. Rate-limited calls are
// not retried.
func (m *Manager) callProvider(ctx context.Context, p Provider, req *Request) (*Response, error) {
	attempts := max(m.cfg.RetryAttempts, 1)

	var err error
	for i := range attempts {
		if i > 0 {
			t := time.NewTimer(time.Duration(i) * m.cfg.RetryDelay)
			select {
			case <-ctx.Done():
				t.Stop()
				return nil, ctx.Err()
			case <-t.C:
			}
		}

		var resp *Response
		if resp, err = p.GenerateContent(ctx, req); err == nil {
			return resp, nil
		}
		if errors.Is(err, ErrProviderRateLimited) {
			return nil, err
		}
	}
	return nil, err
}

func (m *Manager) logSuccess(ctx context.Context, p Provider, resp *Response) {
	kv := []any{"provider", p.Name(), "model", p.Model()}
	if resp.Usage != nil {
		kv = append(kv, "input_tokens", resp.Usage.InputTokens, "output_tokens", resp.Usage.OutputTokens)
	}
	m.l.Info(ctx, append([]any{"llmprovider.Manager.GenerateContent: ok"}, kv...)...)
}

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}
	for _, msg := range req.Messages {
		if strings.TrimSpace(msg.Text) != "" {
			return nil
		}
	}
	return fmt.Errorf("%w: no message text", ErrInvalidRequest)
}
