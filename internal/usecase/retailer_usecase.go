package usecase

import (
	"context"

	"dealsmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ApplyRetailerInput carries the multi-step application form.
type ApplyRetailerInput struct {
	// Business identity
	BusinessName       string
	LegalName          string
	BusinessType       string
	RegistrationNumber string
	WebsiteURL         string
	Description        string
	LogoURL            string

	// Contact
	ContactName  string
	ContactEmail string
	ContactPhone string
	Address      string
	City         string
	Country      string

	// Inventory profile
	ProductCategories []string
	AverageDiscount   float64
	SKUCount          int
	MonthlyDeals      int

	// Operational controls
	SalesChannels   []string
	ReturnPolicyURL string
	ShippingRegions string

	// Legal acknowledgements; all three are mandatory.
	AcceptTerms      bool
	AcceptCommission bool
	ConfirmAuthority bool
}

// UpdateRetailerProfileInput patches the public profile of a retailer. Nil fields are left unchanged.
type UpdateRetailerProfileInput struct {
	Name         *string
	Description  *string
	LogoURL      *string
	WebsiteURL   *string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
	Address      *string
	City         *string
	Country      *string
}

// UpdateRetailerSettingsInput replaces the operational settings of a retailer.
type UpdateRetailerSettingsInput struct {
	AffiliateID     *string
	SalesChannels   []string
	ReturnPolicyURL string
	ShippingRegions string
}

// ReviewInput is an admin decision on a retailer or a deal.
type ReviewInput struct {
	Approve         bool
	RejectionReason *string
}

// --- Output DTOs ---

// RetailerStatusOutput is the live status polled by the pending and rejected pages.
type RetailerStatusOutput struct {
	Status          entity.RetailerStatus
	RejectionReason *string
	// RedirectTo is the canonical page for Status.
	RedirectTo string
}

// RetailerPage is one page of an admin retailer listing.
type RetailerPage struct {
	Items    []*entity.Retailer
	Total    int64
	Page     int
	PageSize int
}

// RetailerUsecase covers the retailer application and account lifecycle.
type RetailerUsecase interface {
	// Apply creates a pending retailer for the caller and links it to the caller's profile.
	Apply(ctx context.Context, userID uuid.UUID, input *ApplyRetailerInput) (*entity.Retailer, error)

	// GetStatus re-reads the caller's retailer status.
	GetStatus(ctx context.Context, userID uuid.UUID) (*RetailerStatusOutput, error)

	// GetOwn returns the caller's retailer.
	GetOwn(ctx context.Context, userID uuid.UUID) (*entity.Retailer, error)

	// UpdateProfile patches the caller's retailer profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateRetailerProfileInput) (*entity.Retailer, error)

	// UpdateSettings replaces the caller's retailer settings.
	UpdateSettings(ctx context.Context, userID uuid.UUID, input *UpdateRetailerSettingsInput) (*entity.Retailer, error)

	// List returns retailers for admin review, optionally filtered by status.
	List(ctx context.Context, status *entity.RetailerStatus, page, pageSize int) (*RetailerPage, error)

	// Review records an admin decision on a retailer application.
	Review(ctx context.Context, adminID, retailerID uuid.UUID, input *ReviewInput) (*entity.Retailer, error)
}
