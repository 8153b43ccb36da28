// Package ratelimit throttles requests per client with token buckets.
package ratelimit

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	appErrors "github.com/tendersaarthi/tendersaarthi-api/pkg/errors"
	"github.com/tendersaarthi/tendersaarthi-api/pkg/response"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyLimiter keeps one token bucket per key. Buckets idle for longer than the idle timeout are
// evicted on the next sweep.
type KeyLimiter struct {
	mu      sync.Mutex
	buckets map[string]*entry
	r       rate.Limit
	b       int
	idle    time.Duration
	swept   time.Time
	now     func() time.Time
}

// NewKeyLimiter allows reqPerSec sustained requests with the given burst per key.
func NewKeyLimiter(reqPerSec float64, burst int) *KeyLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &KeyLimiter{
		buckets: make(map[string]*entry),
		r:       rate.Limit(reqPerSec),
		b:       burst,
		idle:    10 * time.Minute,
		now:     time.Now,
	}
}

// Allow reports whether key may proceed now.
func (l *KeyLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)
	e, ok := l.buckets[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.r, l.b)}
		l.buckets[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (l *KeyLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *KeyLimiter) sweep(now time.Time) {
	if now.Sub(l.swept) < l.idle {
		return
	}
	l.swept = now
	for key, e := range l.buckets {
		if now.Sub(e.lastSeen) > l.idle {
			delete(l.buckets, key)
		}
	}
}

// Middleware rejects requests over the limit of their client IP with 429. onLimited, when set,
// is called for every rejected request.
func Middleware(l *KeyLimiter, onLimited func()) gin.HandlerFunc {
	retryAfter := "1"
	if l.r > 0 && l.r < 1 {
		retryAfter = strconv.Itoa(int(1/float64(l.r) + 0.5))
	}
	return func(c *gin.Context) {
		if l.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		if onLimited != nil {
			onLimited()
		}
		c.Header("Retry-After", retryAfter)
		response.Error(c, appErrors.Clone(appErrors.ErrTooManyRequests, "rate limit exceeded, slow down"))
		c.Abort()
	}
}
