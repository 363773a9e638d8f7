package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/nc-news-api/internal/api/shared"
	"github.com/phrazzld/nc-news-api/internal/platform/logger"
)

// maxInboundTraceIDLen bounds a caller-supplied trace id.
const maxInboundTraceIDLen = 64

// Trace returns middleware that assigns every request a trace ID.
// A well-formed inbound X-Trace-ID header is reused, otherwise a new UUID is
// generated. The ID is echoed in the response header and a logger carrying
// it is stored in the request context for downstream handlers and stores.
// This middleware should be applied early in the chain.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := inboundTraceID(r)

			ctx := shared.WithTraceID(r.Context(), traceID)
			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func inboundTraceID(r *http.Request) string {
	id := r.Header.Get(shared.TraceIDHeader)
	if id == "" || len(id) > maxInboundTraceIDLen {
		return uuid.NewString()
	}
	if _, err := uuid.Parse(id); err != nil {
		return uuid.NewString()
	}
	return id
}
