// Package context carries request-scoped values between the HTTP middleware,
// the handlers and the usecases: the request ID, the request logger and the caller's identity.
package context

import (
	"context"
	"log/slog"

	"dealsmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header echoed back with the request ID.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echo.Context store keys.
const (
	echoRequestID = "request_id"
	echoIdentity  = "identity"
)

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestID, requestID)
}

// GetRequestID returns the request ID of the echo context, or "" outside the RequestID middleware.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestID).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying the request ID so usecases can stamp events with it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetIdentity records the authenticated caller for the rest of the request.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(echoIdentity, identity)
}

// GetIdentity returns the authenticated caller, or nil for anonymous requests.
func GetIdentity(c echo.Context) *entity.Identity {
	identity, _ := c.Get(echoIdentity).(*entity.Identity)

	return identity
}

// GetUserID returns the authenticated caller's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity := GetIdentity(c)
	if identity == nil || identity.ID == uuid.Nil {
		return uuid.Nil, false
	}

	return identity.ID, true
}
