package logger

import (
	"context"
	"log/slog"
)

// loggerContextKey is the context key for a request-scoped logger.
type loggerContextKey struct{}

// WithContext returns a context carrying the given logger. Middleware uses
// this to attach a logger enriched with request attributes (trace ID).
func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext retrieves the logger from the context, or nil if none is set.
func FromContext(ctx context.Context) *slog.Logger {
	log, _ := ctx.Value(loggerContextKey{}).(*slog.Logger)
	return log
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default when the context carries none.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if log := FromContext(ctx); log != nil {
		return log
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
