package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is the type of context keys owned by the API layer.
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of random bytes in a trace ID
	TraceIDLength = 16 // 32 hex characters

	// TraceIDHeader is the response header that echoes the trace ID
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a freshly generated trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
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

// generateTraceID returns 32 hex characters read from crypto/rand.
func generateTraceID() string {
	return traceIDFrom(rand.Reader)
}

// traceIDFrom reads a trace ID from r. When r fails or comes up short it
// falls back to a version 1 UUID, which is time based but unique per process.
func traceIDFrom(r io.Reader) string {
	b := make([]byte, TraceIDLength)
	n, err := io.ReadFull(r, b)
	if err == nil {
		return hex.EncodeToString(b)
	}

	slog.Error("failed to generate secure random trace ID",
		"error", err,
		"bytes_read", n,
		"bytes_requested", TraceIDLength,
		"fallback", "uuid v1")
	return fallbackTraceID()
}

func fallbackTraceID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		id = uuid.Must(uuid.NewRandom())
	}
	return strings.ReplaceAll(id.String(), "-", "")
}
