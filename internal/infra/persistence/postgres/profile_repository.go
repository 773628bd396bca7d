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

// userProfileRepository implements the repository.UserProfileRepository interface.
type userProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository is the constructor for userProfileRepository.
func NewUserProfileRepository(db *gorm.DB) repository.UserProfileRepository {
	return &userProfileRepository{
		db: db,
	}
}

// Create persists a new profile.
func (repo *userProfileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if violated(err) == constraintUnique {
			return domainerrors.ErrIdentityAlreadyExists.WrapMessage("profile already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByID retrieves a profile by the identity ID.
func (repo *userProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile")
	}

	return toProfileDomain(&profileM), nil
}

// LinkRetailer points the profile at retailerID and grants the retailer role.
func (repo *userProfileRepository) LinkRetailer(ctx context.Context, userID, retailerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"role":        string(entity.RoleRetailer),
			"retailer_id": retailerID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to link retailer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateName changes the display name.
func (repo *userProfileRepository) UpdateName(ctx context.Context, userID uuid.UUID, name string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("id = ?", userID).
		Update("name", name)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile name")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		ID:         data.ID,
		Email:      data.Email,
		Name:       data.Name,
		Role:       entity.ParseRole(data.Role),
		RetailerID: data.RetailerID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	return &model.UserProfileModel{
		ID:         data.ID,
		Email:      data.Email,
		Name:       data.Name,
		Role:       string(data.Role),
		RetailerID: data.RetailerID,
	}
}
