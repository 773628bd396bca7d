package handler

import (
	"net/http"
	"testing"
	"time"

	"dealsmarket/internal/domain/constants"
	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	mockUsecase "dealsmarket/internal/mocks/usecase"
	"dealsmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Cookies: testCookies(), Logger: testLogger()}), authUC
}

func TestAuthHandler_Signup(t *testing.T) {
	h, authUC := newAuthHandler(t)
	identity := newIdentity()

	authUC.EXPECT().Signup(mock.Anything, &usecase.SignupInput{
		Name:     "User",
		Email:    "user@example.com",
		Password: "s3cret-pass",
	}).Return(&entity.Session{
		Identity:        identity,
		AccessToken:     "access",
		AccessExpiresAt: time.Now().Add(time.Minute),
		RefreshToken:    "refresh",
		Refreshed:       true,
	}, nil)

	c, rec := newRequest(http.MethodPost, "/api/auth/signup",
		`{"email":"user@example.com","password":"s3cret-pass","name":"User"}`, nil)

	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Contains(t, string(body.Data), `"accessToken":"access"`)
	assert.NotContains(t, string(body.Data), "refresh", "refresh token is cookie-only")

	names := map[string]string{}
	for _, cookie := range rec.Result().Cookies() {
		names[cookie.Name] = cookie.Value
		assert.True(t, cookie.HttpOnly)
	}
	assert.Equal(t, "access", names[constants.AccessTokenCookie])
	assert.Equal(t, "refresh", names[constants.RefreshTokenCookie])
}

func TestAuthHandler_Signup_ValidationFailure(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := newRequest(http.MethodPost, "/api/auth/signup",
		`{"email":"not-an-email","password":"short","name":"User"}`, nil)

	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
	assert.Equal(t, map[string]any{"email": "email", "password": "min=8"}, body.Error.Details)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, authUC := newAuthHandler(t)
	authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newRequest(http.MethodPost, "/api/auth/login", `{"email":"user@example.com","password":"wrong"}`, nil)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Logout_UsesCookieAndClears(t *testing.T) {
	h, authUC := newAuthHandler(t)
	authUC.EXPECT().Logout(mock.Anything, "refresh-cookie").Return(nil)

	c, rec := newRequest(http.MethodPost, "/api/auth/logout", "", nil)
	c.Request().AddCookie(&http.Cookie{Name: constants.RefreshTokenCookie, Value: "refresh-cookie"})

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	for _, cookie := range rec.Result().Cookies() {
		assert.Empty(t, cookie.Value)
		assert.Equal(t, -1, cookie.MaxAge)
	}
}

func TestAuthHandler_Refresh_WithoutToken(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := newRequest(http.MethodPost, "/api/auth/refresh", "", nil)

	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
