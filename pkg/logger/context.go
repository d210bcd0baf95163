package logger

import (
	"context"
	"log/slog"
)

type dispatchIDKey struct{}

// WithDispatchID stores a per-dispatch correlation ID in the context.
func WithDispatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, dispatchIDKey{}, id)
}

// DispatchID returns the correlation ID stored by WithDispatchID.
func DispatchID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(dispatchIDKey{}).(string)
	return id, ok && id != ""
}

// DispatchIDExtractor adds the dispatch_id attribute to log records.
func DispatchIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := DispatchID(ctx); ok {
		return slog.String("dispatch_id", id), true
	}
	return slog.Attr{}, false
}
