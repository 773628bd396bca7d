package repository

import (
	"context"
	"errors"

	"dealsmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no user_profiles row exists for the id.
var ErrProfileNotFound = errors.New("user profile not found")

// UserProfileRepository persists the application-side account rows.
type UserProfileRepository interface {
	// Create persists a new profile. The profile ID must equal the identity ID.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// FindByID retrieves a profile by the owning identity's ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)

	// LinkRetailer sets role=retailer and retailer_id on the profile.
	// Linking the same retailer twice is a no-op success.
	LinkRetailer(ctx context.Context, userID, retailerID uuid.UUID) error

	// UpdateName changes the display name of the profile.
	UpdateName(ctx context.Context, userID uuid.UUID, name string) error
}
