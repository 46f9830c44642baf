package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-movie-keeper/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace identifier to every request: reused from the
// incoming X-Trace-ID header when present, freshly generated otherwise. The
// identifier is stamped onto the request-scoped logger and echoed in the
// response header so a client-reported failure can be matched to the logs.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	generator := utils.NewUUIDGenerator()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = generator.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
