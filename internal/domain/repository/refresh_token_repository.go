package repository

import (
	"context"

	"dealsmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when no session matches a refresh token hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores one row per open session. Rows hold the SHA-256 hash of the
// refresh token, never the token itself.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash returns ErrRefreshTokenNotFound for unknown or revoked sessions.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash ends a session. It returns ErrRefreshTokenNotFound when nothing was deleted.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteExpiredRefreshTokens prunes the identity's sessions that can no longer be refreshed.
	DeleteExpiredRefreshTokens(ctx context.Context, identityID uuid.UUID) error
}
