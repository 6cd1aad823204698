package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/justjelku/wordle-clone/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const userIDContextKey ContextKey = "userID"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	rateLimiter *security.RateLimiter
	tokens      *security.TokenManager
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(rateLimiter *security.RateLimiter, tokens *security.TokenManager) *Middleware {
	return &Middleware{rateLimiter: rateLimiter, tokens: tokens}
}

// Logging logs method, path, status and duration of every request.
func (m *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// RateLimit rejects clients that exceed the per-IP request budget.
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.rateLimiter.Allow(ip) {
			respondWithError(w, http.StatusTooManyRequests, "too many requests", nil)
			return
		}
		next(w, r)
	}
}

// WithPlayer resolves an optional Bearer player token into the request
// context. Requests without a token pass through anonymously; requests with a
// bad token are rejected so a client never silently plays as nobody.
func (m *Middleware) WithPlayer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			next(w, r)
			return
		}
		tokenString := strings.TrimPrefix(auth, "Bearer ")
		userID, _, err := m.tokens.Verify(tokenString)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "invalid player token", nil)
			return
		}
		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next(w, r.WithContext(ctx))
	}
}

// PlayerID returns the authenticated player's ID from the request context, or
// "" for anonymous requests.
func PlayerID(r *http.Request) string {
	id, _ := r.Context().Value(userIDContextKey).(string)
	return id
}
