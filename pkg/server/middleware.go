package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ovpn-tools/ovpncheck/pkg/errors"
)

type contextKey string

const contextKeyRequestID contextKey = "requestID"

// withMiddleware wraps an API handler with request-ID tagging, rate
// limiting, and request logging.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		r = r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, requestID))
		w.Header().Set("X-Request-Id", requestID)

		if !s.limiter.Allow() {
			WriteError(w, r, http.StatusTooManyRequests,
				errors.ErrCodeRateLimitExceeded, "too many requests", true)
			return
		}

		start := time.Now()
		next(w, r)

		slog.Debug("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
