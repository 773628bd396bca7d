// Package service declares the domain-facing ports implemented by infrastructure:
// identity tokens, password hashing, lifecycle event publishing, QR rendering and the category cache.
package service

import (
	"errors"
	"time"

	"dealsmarket/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrTokenExpired is returned by validation when the token is well-formed and signed but expired.
var ErrTokenExpired = errors.New("token expired")

// Claims defines the custom claims for the JWT tokens. The subject holds the identity ID.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// IdentityID parses the subject claim.
func (c *Claims) IdentityID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// Identity rebuilds the identity carried by an access token.
func (c *Claims) Identity() (*entity.Identity, error) {
	id, err := c.IdentityID()
	if err != nil {
		return nil, err
	}

	return &entity.Identity{ID: id, Email: c.Email, Name: c.Name}, nil
}

// TokenPair is a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for an identity.
	GenerateTokens(identity *entity.Identity) (*TokenPair, error)

	// GenerateAccessToken creates only a new access token.
	GenerateAccessToken(identity *entity.Identity) (token string, expiresAt time.Time, err error)

	// ValidateAccessToken checks signature, type and expiry of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks signature, type and expiry of a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the storage hash of a raw refresh token.
	HashToken(tokenString string) string

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
