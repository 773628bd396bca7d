package postgres

import (
	"context"

	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/domain/repository"
	"dealsmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// identityRepository implements the repository.IdentityRepository interface.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{
		db: db,
	}
}

// Create persists the identity and its credential. Callers run it inside a transaction.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity, credential *entity.Credential) error {
	identityM := &model.IdentityModel{
		ID:    identity.ID,
		Email: identity.Email,
		Name:  identity.Name,
	}
	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		if violated(err) == constraintUnique {
			return domainerrors.ErrIdentityAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	credentialM := &model.CredentialModel{
		IdentityID:   identityM.ID,
		Email:        credential.Email,
		PasswordHash: credential.PasswordHash,
	}
	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if violated(err) == constraintUnique {
			return domainerrors.ErrIdentityAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt
	credential.ID = credentialM.ID
	credential.IdentityID = identityM.ID
	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

// FindByID retrieves an identity by its unique ID.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&identityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by id")
	}

	return &entity.Identity{
		ID:        identityM.ID,
		Email:     identityM.Email,
		Name:      identityM.Name,
		CreatedAt: identityM.CreatedAt,
	}, nil
}

// FindCredentialByEmail retrieves the email/password credential for a login.
func (repo *identityRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credentialM model.CredentialModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&credentialM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by email")
	}

	return &entity.Credential{
		ID:           credentialM.ID,
		IdentityID:   credentialM.IdentityID,
		Email:        credentialM.Email,
		PasswordHash: credentialM.PasswordHash,
		CreatedAt:    credentialM.CreatedAt,
	}, nil
}
