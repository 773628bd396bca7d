package middleware

import (
	"log/slog"

	"dealsmarket/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewAccessLogger returns the access log middleware. 4xx responses log at warn and 5xx at error.
// Debug mode adds the user agent and request headers.
func NewAccessLogger(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	return slogecho.NewWithConfig(logger.With(slog.String("component", "http")), slogecho.Config{
		DefaultLevel:      slog.LevelInfo,
		ClientErrorLevel:  slog.LevelWarn,
		ServerErrorLevel:  slog.LevelError,
		WithRequestID:     true,
		WithUserAgent:     cfg.Env.Debug,
		WithRequestHeader: cfg.Env.Debug,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath("/health"),
		},
	})
}
