package detect

import (
	"context"
	"testing"
)

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "req-123")
	if got := TraceIDFromContext(ctx); got != "req-123" {
		t.Errorf("trace id = %q, want %q", got, "req-123")
	}
	if got := TraceIDFromContext(context.Background()); got != "" {
		t.Errorf("bare context trace id = %q, want empty", got)
	}
}
