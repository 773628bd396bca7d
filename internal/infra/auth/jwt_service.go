// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"dealsmarket/config"
	"dealsmarket/internal/domain/entity"
	"dealsmarket/internal/domain/service"
	"dealsmarket/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := 15*time.Minute, 7*24*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for an identity.
func (s *jwtService) GenerateTokens(identity *entity.Identity) (*service.TokenPair, error) {
	accessToken, accessExpiresAt, err := s.GenerateAccessToken(identity)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiresAt, err := s.generateToken(identity, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// GenerateAccessToken creates only a new access token.
func (s *jwtService) GenerateAccessToken(identity *entity.Identity) (string, time.Time, error) {
	return s.generateToken(identity, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
}

// ValidateAccessToken checks signature, type and expiry of an access token.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, service.TokenTypeAccess, s.accessSecret)
}

// ValidateRefreshToken checks signature, type and expiry of a refresh token.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, service.TokenTypeRefresh, s.refreshSecret)
}

// HashToken returns the storage hash of a raw refresh token.
func (s *jwtService) HashToken(tokenString string) string {
	return util.SHA256Hex(tokenString)
}

// AccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) validateToken(tokenString, tokenType string, secret []byte) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, pkgerrors.Wrap(err, "failed to parse token")
	}

	if claims.Type != tokenType {
		return nil, pkgerrors.Errorf("unexpected token type %q", claims.Type)
	}
	if _, err := claims.IdentityID(); err != nil {
		return nil, pkgerrors.Wrap(err, "invalid token subject")
	}

	return claims, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(identity *entity.Identity, tokenType string, ttl time.Duration, secret []byte) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(ttl)

	claims := service.Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			// The jti keeps two tokens minted in the same second distinct.
			ID: uuid.NewString(),
		},
	}
	// Only the access token carries profile claims.
	if tokenType == service.TokenTypeAccess {
		claims.Email = identity.Email
		claims.Name = identity.Name
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, pkgerrors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}
