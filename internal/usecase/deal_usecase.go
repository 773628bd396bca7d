package usecase

import (
	"context"
	"time"

	"dealsmarket/internal/domain/entity"
	"dealsmarket/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// DealInput carries the editable fields of a deal.
type DealInput struct {
	Title           string
	Description     string
	CategoryID      *uuid.UUID
	OriginalPrice   float64
	DiscountedPrice float64
	Quantity        int
	DealURL         string
	ImageURL        string
	StartDate       *time.Time
	EndDate         *time.Time
	IsActive        bool
}

// DealListInput narrows the public deal listing.
type DealListInput struct {
	CategorySlug string
	RetailerSlug string
	Query        string
	Sort         repository.DealSort
	Page         int
	PageSize     int
}

// --- Output DTOs ---

// DealPage is one page of a deal listing.
type DealPage struct {
	Items    []*entity.Deal
	Total    int64
	Page     int
	PageSize int
}

// DealUsecase covers retailer-owned deal mutations, the public catalogue and admin review.
// Retailer operations derive the retailer from the caller's profile and never trust a client-supplied id.
type DealUsecase interface {
	// Create submits a new deal for review.
	Create(ctx context.Context, userID uuid.UUID, input *DealInput) (*entity.Deal, error)

	// Edit saves changes and sends the deal back to review.
	Edit(ctx context.Context, userID, dealID uuid.UUID, input *DealInput) (*entity.Deal, error)

	// Pause hides an approved deal.
	Pause(ctx context.Context, userID, dealID uuid.UUID) (*entity.Deal, error)

	// Resume shows a paused approved deal again.
	Resume(ctx context.Context, userID, dealID uuid.UUID) (*entity.Deal, error)

	// Delete hard-removes one of the caller's deals regardless of status.
	Delete(ctx context.Context, userID, dealID uuid.UUID) error

	// ListOwn lists the caller's deals, optionally filtered by status.
	ListOwn(ctx context.Context, userID uuid.UUID, status *entity.DealStatus, page, pageSize int) (*DealPage, error)

	// GetOwn returns one of the caller's deals.
	GetOwn(ctx context.Context, userID, dealID uuid.UUID) (*entity.Deal, error)

	// ListPublic lists consumer-visible deals. Store failures degrade to an empty page.
	ListPublic(ctx context.Context, input *DealListInput) *DealPage

	// GetPublic returns a consumer-visible deal and counts the view.
	GetPublic(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error)

	// TrackClick counts an outbound click and returns the deal.
	TrackClick(ctx context.Context, dealID uuid.UUID) (*entity.Deal, error)

	// ShareQR renders a PNG QR code for a visible deal.
	ShareQR(ctx context.Context, dealID uuid.UUID) ([]byte, error)

	// ListForReview lists deals for admin review, optionally filtered by status.
	ListForReview(ctx context.Context, status *entity.DealStatus, page, pageSize int) (*DealPage, error)

	// Review records an admin decision. Approval fires matching price alerts.
	Review(ctx context.Context, adminID, dealID uuid.UUID, input *ReviewInput) (*entity.Deal, error)
}
