package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"support-chat-backend/pkg/response"
)

const (
	defaultMaxClients      = 10000
	defaultClientRetention = 10 * time.Minute
)

// RateLimit applies a token bucket per client IP. It is a no-op when rate
// limiting is disabled.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		key := c.ClientIP()
		if ok, retryAfter := mw.limiter.allow(key); !ok {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one limiter per client. Clients idle for longer than the
// retention expire from the LRU so memory stays bounded.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, burst, maxClients int, retention time.Duration) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	if burst <= 0 {
		burst = max(requestsPerMin/10, 1)
	}
	if maxClients <= 0 {
		maxClients = defaultMaxClients
	}
	if retention <= 0 {
		retention = defaultClientRetention
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxClients, nil, retention),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

// allow consumes a token for key. When refused it also reports how long
// until the next token is available.
func (rl *rateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	// Get does not extend the TTL; re-adding keeps an active client's bucket.
	rl.limiters.Add(key, limiter)
	rl.mu.Unlock()

	r := limiter.Reserve()
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return false, delay
	}
	return true, 0
}
