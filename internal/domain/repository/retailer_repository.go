package repository

import (
	"context"
	"errors"
	"time"

	"dealsmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRetailerNotFound is returned when no retailer matches the lookup or the ownership filter.
var ErrRetailerNotFound = errors.New("retailer not found")

// RetailerFilter narrows admin listings of retailers.
type RetailerFilter struct {
	Status *entity.RetailerStatus
	Offset int
	Limit  int
}

// RetailerReview is the outcome an admin records for an application.
type RetailerReview struct {
	Status          entity.RetailerStatus
	IsActive        bool
	RejectionReason *string
	ReviewedAt      time.Time
}

// RetailerRepository persists retailer accounts and their application data.
type RetailerRepository interface {
	// Create persists a new retailer row.
	Create(ctx context.Context, retailer *entity.Retailer) error

	// FindByID retrieves a retailer by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Retailer, error)

	// FindByUserID retrieves the retailer owned by a user, used to re-link orphaned profiles.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Retailer, error)

	// FindBySlug retrieves a retailer by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Retailer, error)

	// SlugExists reports whether a retailer already uses slug.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// UpdateOwned saves the editable fields of a retailer, filtered by both id and user_id.
	// It returns ErrRetailerNotFound when nothing matched.
	UpdateOwned(ctx context.Context, retailer *entity.Retailer) error

	// UpdateReview records an admin decision on the retailer.
	UpdateReview(ctx context.Context, id uuid.UUID, review RetailerReview) error

	// List returns retailers matching filter, newest first, and the total match count.
	List(ctx context.Context, filter RetailerFilter) ([]*entity.Retailer, int64, error)
}
