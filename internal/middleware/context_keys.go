package middleware

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type for request-context keys.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey   = contextKey("logger")
	customerIDKey  = contextKey("customerID")
	authHeaderName = "Authorization"
)

// GetLoggerFromCtx retrieves the request-scoped logger from the context.
// It falls back to the default logger if none was injected.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetCustomerIDFromCtx retrieves the authenticated customer ID from the
// context. The second return value reports whether it was present.
func GetCustomerIDFromCtx(ctx context.Context) (int64, bool) {
	customerID, ok := ctx.Value(customerIDKey).(int64)
	return customerID, ok
}
