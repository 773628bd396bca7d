package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dealsmarket/config"
	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/domain/repository"
	"dealsmarket/internal/domain/service"
	"dealsmarket/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	identityRepo  repository.IdentityRepository
	tokenRepo     repository.RefreshTokenRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	refreshWindow time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	identityRepo repository.IdentityRepository,
	tokenRepo repository.RefreshTokenRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	var window time.Duration
	if cfg != nil && cfg.Auth != nil {
		window = cfg.Auth.RefreshWindow
	}

	return &authService{
		txManager:     txManager,
		identityRepo:  identityRepo,
		tokenRepo:     tokenRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		refreshWindow: window,
		logger:        logger,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates the identity, its credential and a consumer profile in one transaction.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.Session, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting signup", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during signup")
	}

	var session *entity.Session

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identityRepo := repoFactory.IdentityRepo()

		// 1. Reject duplicate emails.
		_, err := identityRepo.FindCredentialByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrIdentityAlreadyExists.WrapMessage("signup failed")
		}
		if !errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(err, "failed to find credential")
		}

		// 2. Create the identity and its email/password credential.
		identity := &entity.Identity{Email: email, Name: strings.TrimSpace(input.Name)}
		credential := &entity.Credential{Email: email, PasswordHash: hashedPassword}
		if err := identityRepo.Create(ctx, identity, credential); err != nil {
			return errors.WithStack(err)
		}

		// 3. Every new account starts as a consumer.
		profile := &entity.UserProfile{
			ID:    identity.ID,
			Email: identity.Email,
			Name:  identity.Name,
			Role:  entity.RoleConsumer,
		}
		if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
			return errors.WithStack(err)
		}

		// 4. Open the first session.
		session, err = srv.issueSession(ctx, repoFactory.RefreshTokenRepo(), identity)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}
	srv.log(ctx).Info("Signup completed", slog.Any("user_id", session.Identity.ID))

	return session, nil
}

// Login verifies credentials and opens a new session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Session, error) {
	email := normalizeEmail(input.Email)

	credential, err := srv.identityRepo.FindCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	identity, err := srv.identityRepo.FindByID(ctx, credential.IdentityID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find identity")
	}

	session, err := srv.issueSession(ctx, srv.tokenRepo, identity)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Login succeeded", slog.Any("user_id", identity.ID))

	// Housekeeping only; a failed prune never fails the login.
	if err := srv.tokenRepo.DeleteExpiredRefreshTokens(ctx, identity.ID); err != nil {
		srv.log(ctx).Warn("Failed to prune expired sessions",
			slog.Any("user_id", identity.ID),
			slog.Any("error", err),
		)
	}

	return session, nil
}

// Logout revokes the refresh token. Unknown tokens are ignored.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	err := srv.tokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// Refresh exchanges a valid, stored refresh token for a new access token.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*entity.Session, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage(err.Error())
	}
	identityID, err := claims.IdentityID()
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("malformed subject")
	}

	stored, err := srv.tokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token revoked")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if stored.IdentityID != identityID || stored.IsExpired(srv.now()) {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token expired or mismatched")
	}

	identity, err := srv.identityRepo.FindByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("identity no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find identity")
	}

	accessToken, expiresAt, err := srv.tokenService.GenerateAccessToken(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &entity.Session{
		Identity:        identity,
		AccessToken:     accessToken,
		AccessExpiresAt: expiresAt,
		Refreshed:       true,
	}, nil
}

// CurrentUser returns the identity of a valid access token.
func (srv *authService) CurrentUser(_ context.Context, accessToken string) (*entity.Identity, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("missing access token")
	}

	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage(err.Error())
	}

	identity, err := claims.Identity()
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("malformed subject")
	}

	return identity, nil
}

// RefreshSession keeps a valid access token, or renews it from the refresh token when it is
// missing, expired or within the refresh window of expiry.
func (srv *authService) RefreshSession(ctx context.Context, accessToken, refreshToken string) (*entity.Session, error) {
	var current *entity.Session

	if accessToken != "" {
		claims, err := srv.tokenService.ValidateAccessToken(accessToken)
		if err == nil {
			if identity, idErr := claims.Identity(); idErr == nil {
				var expiresAt time.Time
				if claims.ExpiresAt != nil {
					expiresAt = claims.ExpiresAt.Time
				}
				current = &entity.Session{Identity: identity, AccessToken: accessToken, AccessExpiresAt: expiresAt}

				if expiresAt.Sub(srv.now()) > srv.refreshWindow || refreshToken == "" {
					return current, nil
				}
			}
		}
	}

	if refreshToken == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("no usable session")
	}

	session, err := srv.Refresh(ctx, refreshToken)
	if err != nil {
		if current != nil {
			// The access token is still valid; renewal can wait for the next request.
			srv.log(ctx).Debug("Access token renewal failed", slog.Any("error", err))

			return current, nil
		}

		if errors.Is(err, domainerrors.ErrRefreshTokenInvalid) {
			return nil, domainerrors.ErrUnauthenticated.WrapMessage(err.Error())
		}

		// Store failures leave the refresh token intact so the next request can retry.
		return nil, errors.Wrap(err, "failed to renew session")
	}
	srv.log(ctx).Debug("Access token renewed", slog.Any("user_id", session.Identity.ID))

	return session, nil
}

func (srv *authService) issueSession(ctx context.Context, tokenRepo repository.RefreshTokenRepository, identity *entity.Identity) (*entity.Session, error) {
	pair, err := srv.tokenService.GenerateTokens(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	token := &entity.RefreshToken{
		IdentityID: identity.ID,
		TokenHash:  srv.tokenService.HashToken(pair.RefreshToken),
		ExpiresAt:  pair.RefreshExpiresAt,
	}
	if err := tokenRepo.CreateRefreshToken(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &entity.Session{
		Identity:        identity,
		AccessToken:     pair.AccessToken,
		AccessExpiresAt: pair.AccessExpiresAt,
		RefreshToken:    pair.RefreshToken,
		Refreshed:       true,
	}, nil
}
