// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/delivery/http/middleware"
	"dealsmarket/internal/delivery/http/response"
	"dealsmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Cookies *middleware.SessionCookies
	Logger  *slog.Logger
}

// AuthHandler serves the local identity provider endpoints.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	cookies *middleware.SessionCookies
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		cookies: params.Cookies,
		logger:  params.Logger,
	}
}

// SignupRequest represents the request body for creating an account.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginRequest represents the request body for signing in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest optionally carries the refresh token for clients that do not use cookies.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Signup creates an identity with a consumer profile and signs it in.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.Write(c, session)

	return response.Success(c, http.StatusCreated, toSessionResponse(session))
}

// Login verifies the credentials and signs the user in.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	session, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.Write(c, session)

	return response.Success(c, http.StatusOK, toSessionResponse(session))
}

// Logout revokes the refresh token and clears the session cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	refreshToken := h.refreshToken(c)
	if refreshToken != "" {
		if err := h.authUC.Logout(c.Request().Context(), refreshToken); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	h.cookies.Clear(c)

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}

// Refresh exchanges the refresh token for a new access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := h.refreshToken(c)
	if refreshToken == "" {
		return response.Unauthorized(c)
	}

	session, err := h.authUC.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.Write(c, session)

	return response.Success(c, http.StatusOK, toSessionResponse(session))
}

// Me returns the identity of the authenticated caller.
func (h *AuthHandler) Me(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return response.Unauthorized(c)
	}

	return response.Success(c, http.StatusOK, toIdentityResponse(identity))
}

// refreshToken prefers the JSON body and falls back to the cookie.
func (h *AuthHandler) refreshToken(c echo.Context) string {
	var req RefreshRequest
	if c.Request().ContentLength != 0 {
		_ = c.Bind(&req)
	}
	if req.RefreshToken != "" {
		return req.RefreshToken
	}

	_, refreshToken := h.cookies.Read(c)

	return refreshToken
}
