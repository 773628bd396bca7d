// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dealsmarket/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an identity.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthUsecase is the local identity provider: it authenticates users and issues session tokens.
// Role and retailer linkage are not part of it; see AccessUsecase.
type AuthUsecase interface {
	// Signup creates the identity, its credential and a consumer profile, then opens a session.
	Signup(ctx context.Context, input *SignupInput) (*entity.Session, error)

	// Login verifies credentials and opens a session.
	Login(ctx context.Context, input *LoginInput) (*entity.Session, error)

	// Logout revokes the refresh token. Unknown tokens are ignored.
	Logout(ctx context.Context, refreshToken string) error

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (*entity.Session, error)

	// CurrentUser returns the identity of a valid access token.
	CurrentUser(ctx context.Context, accessToken string) (*entity.Identity, error)

	// RefreshSession validates the session carried by the cookies and renews the access token when it
	// is missing, expired or close to expiry. It returns ErrUnauthenticated when neither token is usable.
	// Store failures come back as plain errors and must not be treated as a logout.
	RefreshSession(ctx context.Context, accessToken, refreshToken string) (*entity.Session, error)
}
