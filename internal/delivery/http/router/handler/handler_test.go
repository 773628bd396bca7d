package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dealsmarket/config"
	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/delivery/http/middleware"
	"dealsmarket/internal/delivery/http/validator"
	"dealsmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCookies() *middleware.SessionCookies {
	return middleware.NewSessionCookies(&config.Config{Auth: &config.AuthConfig{RefreshTokenTTL: 24 * time.Hour}})
}

// newRequest builds an echo context for a JSON request. A non-nil identity is stored as the caller.
func newRequest(method, target, body string, identity *entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if identity != nil {
		deliverycontext.SetIdentity(c, identity)
	}

	return c, rec
}

func withParams(c echo.Context, names []string, values []string) echo.Context {
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c
}

type envelope struct {
	Success bool            `json:"success"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func newIdentity() *entity.Identity {
	return &entity.Identity{ID: uuid.New(), Email: "user@example.com", Name: "User"}
}
