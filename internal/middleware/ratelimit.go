package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"day-to-day/pkg/response"
)

// rateLimiter keeps one token bucket per caller. The provider routes use it
// to absorb duplicate bursts from a single control while a call is in
// flight.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newRateLimiter(perMin int, burst int) *rateLimiter {
	if perMin <= 0 {
		perMin = 30
	}
	if burst <= 0 {
		burst = 3
	}
	return &rateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.limiters[key] = limiter
	}
	rl.mu.Unlock()
	return limiter.Allow()
}

// RateLimit returns a per-user rate limiting middleware. Must run after
// Auth so the caller scope is available; anonymous requests fall back to
// the client IP.
func (m Middleware) RateLimit(perMin, burst int) gin.HandlerFunc {
	rl := newRateLimiter(perMin, burst)
	return func(c *gin.Context) {
		key := GetScope(c).UserID
		if key == "" {
			key = c.ClientIP()
		}
		if !rl.allow(key) {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests, slow down",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
