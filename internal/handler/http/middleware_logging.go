package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
)

// withLogging emits one access-log line per request: URI, method, status,
// duration and response size. The status and size are captured through the
// responseWriter wrapper, so the line reflects what actually went out, not
// what the handler intended.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
