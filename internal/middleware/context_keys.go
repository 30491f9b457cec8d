package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context keys defined in this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	// userIDKey stores the authenticated user's ID.
	userIDKey = contextKey("userID")
	// loggerCtxKey stores the request-scoped logger in the standard context.
	loggerCtxKey = contextKey("logger")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok
	}
	// check in the request context as well
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It falls back to the default logger so callers never have to nil-check.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
