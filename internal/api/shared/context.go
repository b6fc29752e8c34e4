package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the key type for values this package stores in a context.
type ContextKey string

// TraceIDKey is the key for the trace ID in the request context.
const TraceIDKey ContextKey = "traceID"

// TraceIDHeader carries the request trace ID on every response.
const TraceIDHeader = "X-Trace-ID"

// NewTraceID returns a fresh random trace ID.
func NewTraceID() string {
	return uuid.NewString()
}

// WithTraceID adds a trace ID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
