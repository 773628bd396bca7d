package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dealsmarket/config"
	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/domain/access"
	"dealsmarket/internal/domain/constants"
	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	mockUsecase "dealsmarket/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCookies() *SessionCookies {
	return NewSessionCookies(&config.Config{Auth: &config.AuthConfig{
		RefreshTokenTTL: 24 * time.Hour,
		CookieSecure:    true,
	}})
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestSessionMiddleware_RefreshesOnNavigation(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	identity := &entity.Identity{ID: uuid.New(), Email: "a@example.com"}
	authUC.EXPECT().RefreshSession(mock.Anything, "old-access", "refresh").Return(&entity.Session{
		Identity:        identity,
		AccessToken:     "new-access",
		AccessExpiresAt: time.Now().Add(15 * time.Minute),
		Refreshed:       true,
	}, nil)

	m := NewSessionMiddleware(authUC, testCookies(), testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/watchlist", nil)
	req.AddCookie(&http.Cookie{Name: constants.AccessTokenCookie, Value: "old-access"})
	req.AddCookie(&http.Cookie{Name: constants.RefreshTokenCookie, Value: "refresh"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Identity
	err := m.Process(func(c echo.Context) error {
		seen = deliverycontext.GetIdentity(c)
		return okHandler(c)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, identity, seen)

	cookie := responseCookie(rec, constants.AccessTokenCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "new-access", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Nil(t, responseCookie(rec, constants.RefreshTokenCookie), "refresh cookie is untouched when not rotated")
}

func TestSessionMiddleware_ClearsUnusableSession(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().RefreshSession(mock.Anything, "", "stale").
		Return(nil, domainerrors.ErrUnauthenticated.WrapMessage("no usable session"))

	m := NewSessionMiddleware(authUC, testCookies(), testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: constants.RefreshTokenCookie, Value: "stale"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Process(okHandler)(c))

	assert.Nil(t, deliverycontext.GetIdentity(c))
	cookie := responseCookie(rec, constants.RefreshTokenCookie)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestSessionMiddleware_KeepsCookiesOnStoreFailure(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().RefreshSession(mock.Anything, "expired", "refresh").
		Return(nil, errors.Wrap(errors.New("connection refused"), "failed to renew session"))

	m := NewSessionMiddleware(authUC, testCookies(), testLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/watchlist", nil)
	req.AddCookie(&http.Cookie{Name: constants.AccessTokenCookie, Value: "expired"})
	req.AddCookie(&http.Cookie{Name: constants.RefreshTokenCookie, Value: "refresh"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Process(okHandler)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, deliverycontext.GetIdentity(c))
	assert.Nil(t, responseCookie(rec, constants.AccessTokenCookie))
	assert.Nil(t, responseCookie(rec, constants.RefreshTokenCookie))
}

func TestSessionMiddleware_SkipsAPIAndPosts(t *testing.T) {
	// No expectations: the identity provider must not be called.
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewSessionMiddleware(authUC, testCookies(), testLogger())

	e := echo.New()
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/deals"},
		{http.MethodPost, "/retailer/apply"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		req.AddCookie(&http.Cookie{Name: constants.AccessTokenCookie, Value: "access"})
		rec := httptest.NewRecorder()

		require.NoError(t, m.Process(okHandler)(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestEdgeGate_RedirectsWithSeeOther(t *testing.T) {
	accessUC := mockUsecase.NewMockAccessUsecase(t)
	accessUC.EXPECT().EvaluateEdge(mock.Anything, http.MethodGet, "/retailer/dashboard", (*entity.Identity)(nil)).
		Return(access.Redirect(access.LoginWithReturn("/retailer/dashboard"), "unauthenticated"))

	gate := NewEdgeGate(accessUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/retailer/dashboard", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, gate.Process(okHandler)(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login?returnUrl=%2Fretailer%2Fdashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestEdgeGate_PassesQueryToAccessCheck(t *testing.T) {
	accessUC := mockUsecase.NewMockAccessUsecase(t)
	accessUC.EXPECT().EvaluateEdge(mock.Anything, http.MethodGet, "/retailer/dashboard/deals?status=pending", (*entity.Identity)(nil)).
		Return(access.Redirect(access.LoginWithReturn("/retailer/dashboard/deals?status=pending"), "unauthenticated"))

	gate := NewEdgeGate(accessUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/retailer/dashboard/deals?status=pending", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, gate.Process(okHandler)(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login?returnUrl=%2Fretailer%2Fdashboard%2Fdeals%3Fstatus%3Dpending", rec.Header().Get(echo.HeaderLocation))
}

func TestEdgeGate_AllowsAndSkipsAPI(t *testing.T) {
	accessUC := mockUsecase.NewMockAccessUsecase(t)
	accessUC.EXPECT().EvaluateEdge(mock.Anything, http.MethodGet, "/", (*entity.Identity)(nil)).Return(access.Allow())

	gate := NewEdgeGate(accessUC)
	e := echo.New()

	for _, path := range []string{"/", "/api/retailer/status", "/health"} {
		rec := httptest.NewRecorder()
		require.NoError(t, gate.Process(okHandler)(e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New()}

	tests := []struct {
		name       string
		prepare    func(req *http.Request, authUC *mockUsecase.MockAuthUsecase)
		wantStatus int
	}{
		{
			name:       "missing credentials",
			prepare:    func(*http.Request, *mockUsecase.MockAuthUsecase) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "bearer token",
			prepare: func(req *http.Request, authUC *mockUsecase.MockAuthUsecase) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
				authUC.EXPECT().CurrentUser(mock.Anything, "header-token").Return(identity, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "access cookie",
			prepare: func(req *http.Request, authUC *mockUsecase.MockAuthUsecase) {
				req.AddCookie(&http.Cookie{Name: constants.AccessTokenCookie, Value: "cookie-token"})
				authUC.EXPECT().CurrentUser(mock.Anything, "cookie-token").Return(identity, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid token",
			prepare: func(req *http.Request, authUC *mockUsecase.MockAuthUsecase) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
				authUC.EXPECT().CurrentUser(mock.Anything, "expired").
					Return(nil, domainerrors.ErrUnauthenticated.WrapMessage("token expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			m := NewAuthMiddleware(authUC, mockUsecase.NewMockAccessUsecase(t), testCookies(), testLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
			tt.prepare(req, authUC)
			rec := httptest.NewRecorder()

			require.NoError(t, m.Authenticate(okHandler)(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		profile    *entity.AccessProfile
		err        error
		wantStatus int
	}{
		{name: "admin allowed", profile: &entity.AccessProfile{UserID: userID, Role: entity.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "consumer forbidden", profile: &entity.AccessProfile{UserID: userID, Role: entity.RoleConsumer}, wantStatus: http.StatusForbidden},
		{name: "no profile forbidden", err: domainerrors.ErrProfileNotFound.WrapMessage("resolve"), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accessUC := mockUsecase.NewMockAccessUsecase(t)
			accessUC.EXPECT().Resolve(mock.Anything, userID).Return(tt.profile, tt.err)
			m := NewAuthMiddleware(mockUsecase.NewMockAuthUsecase(t), accessUC, testCookies(), testLogger())

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/admin/deals/x/review", nil), rec)
			deliverycontext.SetIdentity(c, &entity.Identity{ID: userID})

			require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	m := NewRequestIDMiddleware(testLogger())
	e := echo.New()

	t.Run("propagates incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()

		var ctxID string
		require.NoError(t, m.Process(func(c echo.Context) error {
			ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
			return nil
		})(e.NewContext(req, rec)))

		assert.Equal(t, "abc-123", ctxID)
		assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
		rec := httptest.NewRecorder()

		require.NoError(t, m.Process(okHandler)(e.NewContext(req, rec)))

		_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.NoError(t, err)
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(testLogger())
	e := echo.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "app error", err: domainerrors.ErrNotOwner, wantStatus: http.StatusForbidden, wantCode: `"code":"NOT_OWNER"`},
		{name: "echo not found", err: echo.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: `"code":"NOT_FOUND"`},
		{name: "unknown error", err: io.ErrUnexpectedEOF, wantStatus: http.StatusInternalServerError, wantCode: `"code":"INTERNAL_ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			m.HandleHTTPError(tt.err, e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.NotContains(t, rec.Body.String(), "unexpected EOF")
		})
	}
}
