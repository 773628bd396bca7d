// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is an email/password login method held by the identity provider.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record.
	IdentityID   uuid.UUID // Links the credential to its Identity.
	Email        string    // Login email, unique across credentials.
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time
}

// RefreshToken represents a long-lived, authorized session.
// It is used to obtain a new access token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID         uuid.UUID // The unique ID for this specific refresh token record.
	IdentityID uuid.UUID // Links this session to the identity it belongs to.
	TokenHash  string    // SHA-256 hash of the raw refresh token.
	ExpiresAt  time.Time // When this refresh token becomes invalid.
	CreatedAt  time.Time // When this session was created.
}

// IsExpired reports whether the token has passed its expiry at the given instant.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Session is the pair of tokens handed to the client after signup, login or refresh.
type Session struct {
	Identity        *Identity
	AccessToken     string
	AccessExpiresAt time.Time
	RefreshToken    string // Empty when only the access token was renewed.
	Refreshed       bool   // True when a new access token was minted.
}
