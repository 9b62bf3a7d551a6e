package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the type for request-context values set by this package and
// the middleware layer.
type ContextKey string

const (
	// ClaimsContextKey carries the verified token claims attached by the
	// authorization gate.
	ClaimsContextKey ContextKey = "claims"

	// TraceIDKey carries the per-request trace ID.
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID attaches a fresh trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID returns the trace ID from the context, or an empty string when
// none was attached.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
