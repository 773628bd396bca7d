package middleware

import (
	"net/http"
	"time"

	"dealsmarket/config"
	"dealsmarket/internal/domain/constants"
	"dealsmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SessionCookies writes and clears the HttpOnly session cookies.
type SessionCookies struct {
	secure     bool
	domain     string
	refreshTTL time.Duration
}

// NewSessionCookies is the constructor for SessionCookies.
func NewSessionCookies(cfg *config.Config) *SessionCookies {
	return &SessionCookies{
		secure:     cfg.Auth.CookieSecure,
		domain:     cfg.Auth.CookieDomain,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
	}
}

// Write stores the tokens of session. The refresh cookie is only touched when the session carries one.
func (sc *SessionCookies) Write(c echo.Context, session *entity.Session) {
	c.SetCookie(sc.cookie(constants.AccessTokenCookie, session.AccessToken, session.AccessExpiresAt))

	if session.RefreshToken != "" {
		c.SetCookie(sc.cookie(constants.RefreshTokenCookie, session.RefreshToken, time.Now().Add(sc.refreshTTL)))
	}
}

// Clear expires both session cookies.
func (sc *SessionCookies) Clear(c echo.Context) {
	for _, name := range []string{constants.AccessTokenCookie, constants.RefreshTokenCookie} {
		cookie := sc.cookie(name, "", time.Unix(0, 0))
		cookie.MaxAge = -1
		c.SetCookie(cookie)
	}
}

// Read returns the raw access and refresh tokens sent by the browser.
func (sc *SessionCookies) Read(c echo.Context) (accessToken, refreshToken string) {
	if cookie, err := c.Cookie(constants.AccessTokenCookie); err == nil {
		accessToken = cookie.Value
	}
	if cookie, err := c.Cookie(constants.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}

	return accessToken, refreshToken
}

func (sc *SessionCookies) cookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   sc.domain,
		Expires:  expires,
		Secure:   sc.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
