package auth

import (
	"testing"
	"time"

	"dealsmarket/config"
	"dealsmarket/internal/domain/entity"
	"dealsmarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	identity := &entity.Identity{ID: uuid.New(), Email: "shopper@example.com", Name: "Shopper"}

	pair, err := jwtService.GenerateTokens(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))

	accessClaims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, "shopper@example.com", accessClaims.Email)

	got, err := accessClaims.Identity()
	require.NoError(t, err)
	assert.Equal(t, identity.ID, got.ID)

	refreshClaims, err := jwtService.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
	assert.Empty(t, refreshClaims.Email)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	pair, err := jwtService.GenerateTokens(&entity.Identity{ID: uuid.New()})
	require.NoError(t, err)

	// Each token type is signed with its own secret, so swapping them must fail.
	_, err = jwtService.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)

	_, err = jwtService.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issuedAt := time.Now().Add(-time.Hour)
	impl.now = func() time.Time { return issuedAt }

	token, _, err := impl.GenerateAccessToken(&entity.Identity{ID: uuid.New()})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateAccessToken(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.NotErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	first := jwtService.HashToken("raw-refresh-token")
	assert.Len(t, first, 64)
	assert.Equal(t, first, jwtService.HashToken("raw-refresh-token"))
	assert.NotEqual(t, first, jwtService.HashToken("other-token"))
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
