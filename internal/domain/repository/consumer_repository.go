package repository

import (
	"context"
	"errors"

	"dealsmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for consumer-owned rows.
var (
	// ErrPriceAlertNotFound is returned when no alert matches the id and owner.
	ErrPriceAlertNotFound = errors.New("price alert not found")
	// ErrCategoryNotFound is returned when no category matches the lookup.
	ErrCategoryNotFound = errors.New("category not found")
)

// WatchlistRepository persists deals saved by consumers. Rows are unique per (user, deal).
type WatchlistRepository interface {
	// Add saves the deal for the user. Adding an already-saved deal is a no-op success.
	Add(ctx context.Context, userID, dealID uuid.UUID) error

	// Remove deletes the (user, deal) row if present.
	Remove(ctx context.Context, userID, dealID uuid.UUID) error

	// Exists reports whether the user saved the deal.
	Exists(ctx context.Context, userID, dealID uuid.UUID) (bool, error)

	// ListByUser returns the user's saved deals, newest first, with the deal loaded.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistItem, error)
}

// PriceAlertRepository persists consumer price alerts. Rows are unique per (user, deal).
type PriceAlertRepository interface {
	// Upsert inserts the alert or, when one exists for (user, deal), replaces its target price
	// and resets notified to false. alert is updated with the stored ID and timestamps.
	Upsert(ctx context.Context, alert *entity.PriceAlert) error

	// FindByUserAndDeal retrieves the user's alert on a deal.
	FindByUserAndDeal(ctx context.Context, userID, dealID uuid.UUID) (*entity.PriceAlert, error)

	// ListByUser returns the user's alerts, newest first, with the deal loaded.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PriceAlert, error)

	// DeleteOwned removes an alert by id, filtered by owner.
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error

	// FindTriggered returns un-notified alerts on dealID whose target is at or above price.
	FindTriggered(ctx context.Context, dealID uuid.UUID, price float64) ([]*entity.PriceAlert, error)

	// MarkNotified sets notified=true on the given alerts.
	MarkNotified(ctx context.Context, ids []uuid.UUID) error
}

// CategoryRepository reads category reference data.
type CategoryRepository interface {
	// ListActive returns active categories ordered by their display order.
	ListActive(ctx context.Context) ([]*entity.Category, error)

	// FindBySlug retrieves a category by slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
}
