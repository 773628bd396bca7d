package usecase

import (
	"context"

	"dealsmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// WatchlistUsecase manages the deals a consumer saved. All operations are scoped to the caller.
type WatchlistUsecase interface {
	// Add saves a visible deal. Saving it twice is a no-op success.
	Add(ctx context.Context, userID, dealID uuid.UUID) error

	// Remove deletes the saved deal if present.
	Remove(ctx context.Context, userID, dealID uuid.UUID) error

	// List returns the caller's saved deals.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistItem, error)

	// Contains reports whether the caller saved the deal.
	Contains(ctx context.Context, userID, dealID uuid.UUID) (bool, error)
}

// PriceAlertUsecase manages consumer price alerts. All operations are scoped to the caller.
type PriceAlertUsecase interface {
	// Create upserts the caller's alert on a deal. targetPrice must be positive and below the
	// deal's current price. A second call replaces the target and resets notified.
	Create(ctx context.Context, userID, dealID uuid.UUID, targetPrice float64) (*entity.PriceAlert, error)

	// Delete removes one of the caller's alerts.
	Delete(ctx context.Context, userID, alertID uuid.UUID) error

	// List returns the caller's alerts.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.PriceAlert, error)
}

// ProfileUsecase reads and edits the caller's own profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	UpdateName(ctx context.Context, userID uuid.UUID, name string) (*entity.UserProfile, error)
}

// CategoryUsecase serves category reference data.
type CategoryUsecase interface {
	// ListActive returns active categories ordered for display, from cache when possible.
	ListActive(ctx context.Context) ([]*entity.Category, error)
}
