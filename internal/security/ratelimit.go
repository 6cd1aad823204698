package security

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter caps requests per client IP over a fixed window.
type RateLimiter struct {
	clients map[string]*client
	mu      sync.Mutex
	limit   int
	window  time.Duration
}

type client struct {
	remaining   int
	windowStart time.Time
}

// NewRateLimiter creates a rate limiter that allows limit requests per window
// for each client IP. Stale entries are evicted by a background goroutine.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		window:  window,
	}
	go rl.evictStale()
	return rl
}

// Allow reports whether a request from ip should be served.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	c, ok := rl.clients[ip]
	if !ok || now.Sub(c.windowStart) >= rl.window {
		rl.clients[ip] = &client{remaining: rl.limit - 1, windowStart: now}
		return true
	}

	if c.remaining > 0 {
		c.remaining--
		return true
	}
	return false
}

func (rl *RateLimiter) evictStale() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, c := range rl.clients {
			if now.Sub(c.windowStart) > rl.window*2 {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// GetClientIP extracts the client IP from the request, honouring
// X-Forwarded-For and X-Real-IP set by reverse proxies.
func GetClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// First hop is the original client.
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
