package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/domain/access"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware keeps browser sessions alive on page navigations.
// Every GET or HEAD outside /api refreshes the session through the identity provider,
// re-sets the cookies and stores the identity for the gates and handlers.
type SessionMiddleware struct {
	authUC  usecase.AuthUsecase
	cookies *SessionCookies
	logger  *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(authUC usecase.AuthUsecase, cookies *SessionCookies, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		authUC:  authUC,
		cookies: cookies,
		logger:  logger,
	}
}

// Process refreshes the session of navigational page requests.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if !access.IsNavigational(req.Method) || isAPIPath(req.URL.Path) {
			return next(c)
		}

		accessToken, refreshToken := m.cookies.Read(c)
		if accessToken == "" && refreshToken == "" {
			return next(c)
		}

		ctx := req.Context()
		session, err := m.authUC.RefreshSession(ctx, accessToken, refreshToken)
		if err != nil {
			logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
			if errors.Is(err, domainerrors.ErrUnauthenticated) {
				logger.DebugContext(ctx, "Session not usable, clearing cookies", slog.Any("error", err))
				m.cookies.Clear(c)
			} else {
				logger.WarnContext(ctx, "Session refresh failed, continuing anonymously", slog.Any("error", err))
			}

			return next(c)
		}

		if session.Refreshed {
			m.cookies.Write(c, session)
		}
		deliverycontext.SetIdentity(c, session.Identity)

		return next(c)
	}
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
