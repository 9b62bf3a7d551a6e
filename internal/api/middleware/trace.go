package middleware

import (
	"log/slog"
	"net/http"

	"github.com/sports-academy/server/internal/api/shared"
	"github.com/sports-academy/server/internal/platform/logger"
)

// TraceMiddleware attaches a trace ID and a trace-scoped logger to every
// request context. Applied early so all downstream handlers and services log
// and respond with the same correlation ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithContext(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
