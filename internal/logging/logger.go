// Package logging defines the structured-logging interface used across the
// Notehub server. The only implementation wraps log/slog; the interface keeps
// services and transports independent of the concrete backend.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Info(ctx, "starting server", "address", addr)
//
// Callers must never pass secrets or raw tokens as values.
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value
	// pairs.
	With(args ...any) Logger
}
