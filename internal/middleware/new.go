package middleware

import (
	"time"

	"support-chat-backend/pkg/log"
)

// Config configures the shared HTTP middleware.
type Config struct {
	AllowedOrigins []string

	RateLimitEnabled bool
	RequestsPerMin   int
	Burst            int
	MaxClients       int
	ClientRetention  time.Duration
}

type Middleware struct {
	l       log.Logger
	origins []string
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		origins: cfg.AllowedOrigins,
	}
	if cfg.RateLimitEnabled {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.Burst, cfg.MaxClients, cfg.ClientRetention)
	}
	return mw
}
