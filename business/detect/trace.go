package detect

import "context"

type ctxKey string

// TraceIDKey carries the per-request trace id stamped by the HTTP layer.
const TraceIDKey ctxKey = "trace_id"

// WithTraceID returns a context carrying id for downstream detection logs.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, TraceIDKey, id)
}

// TraceIDFromContext extracts the trace id, or "" when none was set.
func TraceIDFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(TraceIDKey).(string); ok {
		return s
	}
	return ""
}
