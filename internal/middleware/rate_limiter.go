package middleware

import (
	"net/http"
	"sync"
	"time"

	"gastropos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// windowEntry counts requests from one client IP inside a fixed window.
type windowEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

// ipLimiter is a fixed-window per-IP counter.
type ipLimiter struct {
	name    string
	limit   int
	window  time.Duration
	mu      sync.Mutex
	entries map[string]*windowEntry
}

var (
	limitersMu sync.Mutex
	limiters   []*ipLimiter
	purgeOnce  sync.Once
)

func newIPLimiter(name string, limit int, window time.Duration) *ipLimiter {
	l := &ipLimiter{name: name, limit: limit, window: window, entries: make(map[string]*windowEntry)}
	limitersMu.Lock()
	limiters = append(limiters, l)
	limitersMu.Unlock()
	purgeOnce.Do(func() { go purgeExpiredEntries() })
	return l
}

// allow registers one hit and reports whether it is within the limit.
func (l *ipLimiter) allow(ip string, now time.Time) (bool, time.Time) {
	l.mu.Lock()
	entry, ok := l.entries[ip]
	if !ok {
		entry = &windowEntry{}
		l.entries[ip] = entry
	}
	l.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(l.window)
	}
	entry.count++
	return entry.count <= l.limit, entry.windowEnd
}

func (l *ipLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, windowEnd := l.allow(c.ClientIP(), time.Now())
		if !ok {
			c.Header("Retry-After", windowEnd.UTC().Format(time.RFC1123))
			abort(c, apierror.New(http.StatusTooManyRequests, apierror.CodeRateLimited))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts per IP per minute.
func LoginRateLimiter(perMinute int) gin.HandlerFunc {
	return newIPLimiter("login", perMinute, time.Minute).handler()
}

// RateLimiter limits every request per IP within window.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newIPLimiter("api", limit, window).handler()
}

// ── Purge goroutine ───────────────────────────────────────────────────────────
// Drops expired entries so IPs that never return do not accumulate.

const purgeInterval = 5 * time.Minute

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		limitersMu.Lock()
		ls := append([]*ipLimiter(nil), limiters...)
		limitersMu.Unlock()

		for _, l := range ls {
			purged := l.purge(now)
			if purged > 0 {
				log.Debug().Str("limiter", l.name).Int("entries_purged", purged).Msg("rate limiter purged")
			}
		}
	}
}

func (l *ipLimiter) purge(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	purged := 0
	for ip, entry := range l.entries {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(l.entries, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}
