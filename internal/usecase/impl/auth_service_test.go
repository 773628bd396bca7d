package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dealsmarket/config"
	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/domain/repository"
	"dealsmarket/internal/domain/service"
	mockRepo "dealsmarket/internal/mocks/repository"
	mockSvc "dealsmarket/internal/mocks/service"
	"dealsmarket/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	identityRepo *mockRepo.MockIdentityRepository
	tokenRepo    *mockRepo.MockRefreshTokenRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	now          time.Time
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	tokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Auth: &config.AuthConfig{RefreshWindow: 2 * time.Minute}}

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewAuthService(txManager, identityRepo, tokenRepo, hasher, tokenService, cfg, logger).(*authService)
	svc.now = func() time.Time { return now }

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		identityRepo: identityRepo,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		tokenService: tokenService,
		now:          now,
	}
}

func accessClaims(identity *entity.Identity, expiresAt time.Time) *service.Claims {
	return &service.Claims{
		Email: identity.Email,
		Name:  identity.Name,
		Type:  service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func TestAuthService_Signup_CreatesConsumerProfile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identityID := uuid.New()

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			txProfileRepo := mockRepo.NewMockUserProfileRepository(t)
			txTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(txIdentityRepo)
			mockFactory.EXPECT().ProfileRepo().Return(txProfileRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(txTokenRepo)

			txIdentityRepo.EXPECT().FindCredentialByEmail(ctx, "new@example.com").Return(nil, repository.ErrCredentialNotFound)
			txIdentityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Identity"), mock.AnythingOfType("*entity.Credential")).
				RunAndReturn(func(_ context.Context, identity *entity.Identity, credential *entity.Credential) error {
					identity.ID = identityID
					credential.IdentityID = identityID

					return nil
				})
			txProfileRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool {
				return p.ID == identityID && p.Role == entity.RoleConsumer && p.RetailerID == nil
			})).Return(nil)
			txTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
				return rt.IdentityID == identityID && rt.TokenHash == "refresh-hash"
			})).Return(nil)

			return fn(mockFactory)
		})
	fx.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("*entity.Identity")).Return(&service.TokenPair{
		AccessToken:      "access",
		AccessExpiresAt:  fx.now.Add(15 * time.Minute),
		RefreshToken:     "refresh",
		RefreshExpiresAt: fx.now.Add(7 * 24 * time.Hour),
	}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")

	session, err := fx.service.Signup(ctx, &usecase.SignupInput{Name: "New User", Email: " New@Example.com ", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, identityID, session.Identity.ID)
	assert.Equal(t, "new@example.com", session.Identity.Email)
	assert.Equal(t, "access", session.AccessToken)
	assert.Equal(t, "refresh", session.RefreshToken)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txIdentityRepo := mockRepo.NewMockIdentityRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(txIdentityRepo)
			txIdentityRepo.EXPECT().FindCredentialByEmail(ctx, "taken@example.com").Return(&entity.Credential{Email: "taken@example.com"}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Email: "taken@example.com", Password: "whatever1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityAlreadyExists))
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.identityRepo.EXPECT().FindCredentialByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrCredentialNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.identityRepo.EXPECT().FindCredentialByEmail(ctx, "user@example.com").Return(&entity.Credential{
			IdentityID: uuid.New(), Email: "user@example.com", PasswordHash: "hash",
		}, nil)
		fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "wrong"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New(), Email: "user@example.com", Name: "User"}

	fx.identityRepo.EXPECT().FindCredentialByEmail(ctx, "user@example.com").Return(&entity.Credential{
		IdentityID: identity.ID, PasswordHash: "hash",
	}, nil)
	fx.hasher.EXPECT().Check("correct", "hash").Return(true)
	fx.identityRepo.EXPECT().FindByID(ctx, identity.ID).Return(identity, nil)
	fx.tokenService.EXPECT().GenerateTokens(identity).Return(&service.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)
	fx.tokenService.EXPECT().HashToken("r").Return("r-hash")
	fx.tokenRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
	fx.tokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx, identity.ID).Return(errors.New("lock timeout"))

	session, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "USER@example.com", Password: "correct"})

	require.NoError(t, err)
	assert.Equal(t, identity, session.Identity)
	assert.True(t, session.Refreshed)
}

func TestAuthService_Logout_IgnoresUnknownToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().HashToken("stale").Return("stale-hash")
	fx.tokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "stale-hash").Return(repository.ErrRefreshTokenNotFound)

	require.NoError(t, fx.service.Logout(ctx, "stale"))
	require.NoError(t, fx.service.Logout(ctx, ""))
}

func TestAuthService_Refresh(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New(), Email: "user@example.com"}

	t.Run("issues a new access token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{
			Type:             service.TokenTypeRefresh,
			RegisteredClaims: jwt.RegisteredClaims{Subject: identity.ID.String()},
		}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
		fx.tokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hash").Return(&entity.RefreshToken{
			IdentityID: identity.ID, ExpiresAt: fx.now.Add(time.Hour),
		}, nil)
		fx.identityRepo.EXPECT().FindByID(ctx, identity.ID).Return(identity, nil)
		fx.tokenService.EXPECT().GenerateAccessToken(identity).Return("new-access", fx.now.Add(15*time.Minute), nil)

		session, err := fx.service.Refresh(ctx, "refresh")

		require.NoError(t, err)
		assert.Equal(t, "new-access", session.AccessToken)
		assert.Empty(t, session.RefreshToken)
		assert.True(t, session.Refreshed)
	})

	t.Run("revoked token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: identity.ID.String()},
		}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
		fx.tokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hash").Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.Refresh(ctx, "refresh")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("stored token expired", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: identity.ID.String()},
		}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
		fx.tokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hash").Return(&entity.RefreshToken{
			IdentityID: identity.ID, ExpiresAt: fx.now,
		}, nil)

		_, err := fx.service.Refresh(ctx, "refresh")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	fx := createTestAuthService(t)
	identity := &entity.Identity{ID: uuid.New(), Email: "user@example.com", Name: "User"}

	fx.tokenService.EXPECT().ValidateAccessToken("good").Return(accessClaims(identity, fx.now.Add(time.Hour)), nil)
	fx.tokenService.EXPECT().ValidateAccessToken("bad").Return(nil, service.ErrTokenExpired)

	got, err := fx.service.CurrentUser(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, identity.ID, got.ID)
	assert.Equal(t, identity.Email, got.Email)

	_, err = fx.service.CurrentUser(context.Background(), "bad")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	_, err = fx.service.CurrentUser(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_RefreshSession(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New(), Email: "user@example.com"}

	t.Run("keeps a token far from expiry", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateAccessToken("access").Return(accessClaims(identity, fx.now.Add(10*time.Minute)), nil)

		session, err := fx.service.RefreshSession(context.Background(), "access", "refresh")

		require.NoError(t, err)
		assert.Equal(t, "access", session.AccessToken)
		assert.False(t, session.Refreshed)
	})

	t.Run("renews a token inside the refresh window", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateAccessToken("access").Return(accessClaims(identity, fx.now.Add(time.Minute)), nil)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: identity.ID.String()},
		}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
		fx.tokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hash").Return(&entity.RefreshToken{
			IdentityID: identity.ID, ExpiresAt: fx.now.Add(time.Hour),
		}, nil)
		fx.identityRepo.EXPECT().FindByID(ctx, identity.ID).Return(identity, nil)
		fx.tokenService.EXPECT().GenerateAccessToken(identity).Return("renewed", fx.now.Add(15*time.Minute), nil)

		session, err := fx.service.RefreshSession(ctx, "access", "refresh")

		require.NoError(t, err)
		assert.Equal(t, "renewed", session.AccessToken)
		assert.True(t, session.Refreshed)
	})

	t.Run("falls back to the current token when renewal fails", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateAccessToken("access").Return(accessClaims(identity, fx.now.Add(time.Minute)), nil)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(nil, errors.New("signature invalid"))

		session, err := fx.service.RefreshSession(ctx, "access", "refresh")

		require.NoError(t, err)
		assert.Equal(t, "access", session.AccessToken)
	})

	t.Run("store failure during renewal is not an authentication failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateAccessToken("expired").Return(nil, service.ErrTokenExpired)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: identity.ID.String()},
		}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
		fx.tokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hash").Return(nil, errors.New("connection refused"))

		session, err := fx.service.RefreshSession(ctx, "expired", "refresh")

		require.Error(t, err)
		assert.Nil(t, session)
		assert.False(t, errors.Is(err, domainerrors.ErrUnauthenticated))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("revoked refresh token is an authentication failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateAccessToken("expired").Return(nil, service.ErrTokenExpired)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: identity.ID.String()},
		}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("hash")
		fx.tokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "hash").Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.RefreshSession(ctx, "expired", "refresh")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("no usable tokens", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateAccessToken("expired").Return(nil, service.ErrTokenExpired)

		_, err := fx.service.RefreshSession(context.Background(), "expired", "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}
