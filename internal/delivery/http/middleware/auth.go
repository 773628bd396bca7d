package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/delivery/http/response"
	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware authenticates API requests and enforces roles.
type AuthMiddleware struct {
	authUC   usecase.AuthUsecase
	accessUC usecase.AccessUsecase
	cookies  *SessionCookies
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(
	authUC usecase.AuthUsecase,
	accessUC usecase.AccessUsecase,
	cookies *SessionCookies,
	logger *slog.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:   authUC,
		accessUC: accessUC,
		cookies:  cookies,
		logger:   logger,
	}
}

// Authenticate accepts a Bearer token or the access cookie. API requests never refresh the session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			token, _ = m.cookies.Read(c)
		}
		if token == "" {
			return response.Unauthorized(c)
		}

		identity, err := m.authUC.CurrentUser(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole re-resolves the caller's role from the store and rejects other roles with 403.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := deliverycontext.GetUserID(c)
			if !ok {
				return response.Unauthorized(c)
			}

			ctx := c.Request().Context()
			profile, err := m.accessUC.Resolve(ctx, userID)
			if err != nil {
				if errors.Is(err, domainerrors.ErrProfileNotFound) {
					return response.HandleAppError(c, domainerrors.ErrUnauthorized)
				}

				return response.HandleAppError(c, err)
			}

			if !slices.Contains(roles, profile.Role) {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).DebugContext(ctx, "Role check failed",
					slog.Any("user_id", userID),
					slog.String("role", profile.Role.String()),
				)

				return response.HandleAppError(c, domainerrors.ErrUnauthorized)
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}

	return strings.TrimSpace(token)
}
