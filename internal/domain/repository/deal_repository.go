package repository

import (
	"context"
	"errors"
	"time"

	"dealsmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDealNotFound is returned when no deal matches the lookup or the ownership filter.
var ErrDealNotFound = errors.New("deal not found")

// DealSort orders deal listings.
type DealSort string

const (
	DealSortNewest    DealSort = "newest"
	DealSortPriceAsc  DealSort = "price_asc"
	DealSortPriceDesc DealSort = "price_desc"
	DealSortDiscount  DealSort = "discount"
)

// DealFilter narrows deal listings. Zero values mean "no restriction".
type DealFilter struct {
	RetailerID   *uuid.UUID
	Status       *entity.DealStatus
	CategorySlug string
	RetailerSlug string
	Query        string
	// VisibleAt restricts the listing to deals consumers may see at that instant.
	VisibleAt *time.Time
	Sort      DealSort
	Offset    int
	Limit     int
}

// DealReview is the outcome an admin records for a deal.
type DealReview struct {
	Status          entity.DealStatus
	RejectionReason *string
}

// DealRepository persists deal listings. Every mutation issued on behalf of a retailer filters by
// both the deal id and the caller's retailer id.
type DealRepository interface {
	// Create persists a new deal.
	Create(ctx context.Context, deal *entity.Deal) error

	// FindByID retrieves a deal by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// List returns deals matching filter and the total match count.
	List(ctx context.Context, filter DealFilter) ([]*entity.Deal, int64, error)

	// UpdateOwned saves the editable fields and status of a deal owned by deal.RetailerID.
	UpdateOwned(ctx context.Context, deal *entity.Deal) error

	// SetActiveOwned flips is_active on an approved deal owned by retailerID.
	SetActiveOwned(ctx context.Context, id, retailerID uuid.UUID, active bool) error

	// DeleteOwned hard-deletes a deal owned by retailerID.
	DeleteOwned(ctx context.Context, id, retailerID uuid.UUID) error

	// UpdateReview records an admin decision on the deal.
	UpdateReview(ctx context.Context, id uuid.UUID, review DealReview) error

	// IncrementViewCount adds one view to the deal.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// IncrementClickCount adds one outbound click to the deal.
	IncrementClickCount(ctx context.Context, id uuid.UUID) error
}
