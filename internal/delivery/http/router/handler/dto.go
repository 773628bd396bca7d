package handler

import (
	"time"

	"dealsmarket/internal/domain/entity"
	"dealsmarket/internal/usecase"

	"github.com/google/uuid"
)

// --- Response DTOs ---

// IdentityResponse is the signed-in user as seen by the identity provider.
type IdentityResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// SessionResponse is returned by signup, login and refresh. The tokens are also set as cookies.
type SessionResponse struct {
	User            IdentityResponse `json:"user"`
	AccessToken     string           `json:"accessToken"`
	AccessExpiresAt time.Time        `json:"accessExpiresAt"`
}

// ProfileResponse is the application-side account.
type ProfileResponse struct {
	ID         uuid.UUID   `json:"id"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Role       entity.Role `json:"role"`
	RetailerID *uuid.UUID  `json:"retailerId"`
}

// RetailerApplicationResponse echoes the submitted application form.
type RetailerApplicationResponse struct {
	LegalName          string   `json:"legalName"`
	BusinessType       string   `json:"businessType"`
	RegistrationNumber string   `json:"registrationNumber"`
	Description        string   `json:"description"`
	LogoURL            string   `json:"logoUrl"`
	ContactName        string   `json:"contactName"`
	ContactEmail       string   `json:"contactEmail"`
	ContactPhone       string   `json:"contactPhone"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	Country            string   `json:"country"`
	ProductCategories  []string `json:"productCategories"`
	AverageDiscount    float64  `json:"averageDiscount"`
	SKUCount           int      `json:"skuCount"`
	MonthlyDeals       int      `json:"monthlyDeals"`
	SalesChannels      []string `json:"salesChannels"`
	ReturnPolicyURL    string   `json:"returnPolicyUrl"`
	ShippingRegions    string   `json:"shippingRegions"`
}

// RetailerResponse is a retailer account.
type RetailerResponse struct {
	ID              uuid.UUID                   `json:"id"`
	Name            string                      `json:"name"`
	Slug            string                      `json:"slug"`
	Status          entity.RetailerStatus       `json:"status"`
	IsActive        bool                        `json:"isActive"`
	Commission      float64                     `json:"commission"`
	WebsiteURL      string                      `json:"websiteUrl"`
	AffiliateID     *string                     `json:"affiliateId"`
	RejectionReason *string                     `json:"rejectionReason"`
	Application     RetailerApplicationResponse `json:"application"`
	ReviewedAt      *time.Time                  `json:"reviewedAt"`
	CreatedAt       time.Time                   `json:"createdAt"`
}

// RetailerStatusResponse is polled by the pending and rejected pages.
type RetailerStatusResponse struct {
	Status          entity.RetailerStatus `json:"status"`
	RejectionReason *string               `json:"rejectionReason"`
	RedirectTo      string                `json:"redirectTo"`
}

// DealResponse is a deal listing.
type DealResponse struct {
	ID              uuid.UUID           `json:"id"`
	RetailerID      uuid.UUID           `json:"retailerId"`
	CategoryID      *uuid.UUID          `json:"categoryId"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Status          entity.DealStatus   `json:"status"`
	IsActive        bool                `json:"isActive"`
	DisplayState    entity.DisplayState `json:"displayState"`
	OriginalPrice   float64             `json:"originalPrice"`
	DiscountedPrice float64             `json:"discountedPrice"`
	DiscountPercent int                 `json:"discountPercent"`
	Quantity        int                 `json:"quantity"`
	DealURL         string              `json:"dealUrl"`
	ImageURL        string              `json:"imageUrl"`
	StartDate       time.Time           `json:"startDate"`
	EndDate         *time.Time          `json:"endDate"`
	RejectionReason *string             `json:"rejectionReason"`
	ViewCount       int64               `json:"viewCount"`
	ClickCount      int64               `json:"clickCount"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// WatchlistItemResponse is a saved deal.
type WatchlistItemResponse struct {
	DealID    uuid.UUID     `json:"dealId"`
	Deal      *DealResponse `json:"deal,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// PriceAlertResponse is a consumer price alert.
type PriceAlertResponse struct {
	ID          uuid.UUID     `json:"id"`
	DealID      uuid.UUID     `json:"dealId"`
	TargetPrice float64       `json:"targetPrice"`
	Notified    bool          `json:"notified"`
	Deal        *DealResponse `json:"deal,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// --- Mapper Functions ---

func toIdentityResponse(identity *entity.Identity) IdentityResponse {
	return IdentityResponse{ID: identity.ID, Email: identity.Email, Name: identity.Name}
}

func toSessionResponse(session *entity.Session) *SessionResponse {
	return &SessionResponse{
		User:            toIdentityResponse(session.Identity),
		AccessToken:     session.AccessToken,
		AccessExpiresAt: session.AccessExpiresAt,
	}
}

func toProfileResponse(profile *entity.UserProfile) *ProfileResponse {
	return &ProfileResponse{
		ID:         profile.ID,
		Email:      profile.Email,
		Name:       profile.Name,
		Role:       profile.Role,
		RetailerID: profile.RetailerID,
	}
}

func toRetailerResponse(retailer *entity.Retailer) *RetailerResponse {
	if retailer == nil {
		return nil
	}
	app := retailer.Application

	return &RetailerResponse{
		ID:              retailer.ID,
		Name:            retailer.Name,
		Slug:            retailer.Slug,
		Status:          retailer.Status,
		IsActive:        retailer.IsActive,
		Commission:      retailer.Commission,
		WebsiteURL:      retailer.WebsiteURL,
		AffiliateID:     retailer.AffiliateID,
		RejectionReason: retailer.RejectionReason,
		Application: RetailerApplicationResponse{
			LegalName:          app.LegalName,
			BusinessType:       app.BusinessType,
			RegistrationNumber: app.RegistrationNumber,
			Description:        app.Description,
			LogoURL:            app.LogoURL,
			ContactName:        app.ContactName,
			ContactEmail:       app.ContactEmail,
			ContactPhone:       app.ContactPhone,
			Address:            app.Address,
			City:               app.City,
			Country:            app.Country,
			ProductCategories:  nonNilStrings(app.ProductCategories),
			AverageDiscount:    app.AverageDiscount,
			SKUCount:           app.SKUCount,
			MonthlyDeals:       app.MonthlyDeals,
			SalesChannels:      nonNilStrings(app.SalesChannels),
			ReturnPolicyURL:    app.ReturnPolicyURL,
			ShippingRegions:    app.ShippingRegions,
		},
		ReviewedAt: retailer.ReviewedAt,
		CreatedAt:  retailer.CreatedAt,
	}
}

func toRetailerResponses(retailers []*entity.Retailer) []*RetailerResponse {
	out := make([]*RetailerResponse, 0, len(retailers))
	for _, retailer := range retailers {
		out = append(out, toRetailerResponse(retailer))
	}

	return out
}

func toRetailerStatusResponse(status *usecase.RetailerStatusOutput) *RetailerStatusResponse {
	return &RetailerStatusResponse{
		Status:          status.Status,
		RejectionReason: status.RejectionReason,
		RedirectTo:      status.RedirectTo,
	}
}

func toDealResponse(deal *entity.Deal) *DealResponse {
	if deal == nil {
		return nil
	}

	return &DealResponse{
		ID:              deal.ID,
		RetailerID:      deal.RetailerID,
		CategoryID:      deal.CategoryID,
		Title:           deal.Title,
		Description:     deal.Description,
		Status:          deal.Status,
		IsActive:        deal.IsActive,
		DisplayState:    deal.DisplayState(),
		OriginalPrice:   deal.OriginalPrice,
		DiscountedPrice: deal.DiscountedPrice,
		DiscountPercent: deal.DiscountPercent(),
		Quantity:        deal.Quantity,
		DealURL:         deal.DealURL,
		ImageURL:        deal.ImageURL,
		StartDate:       deal.StartDate,
		EndDate:         deal.EndDate,
		RejectionReason: deal.RejectionReason,
		ViewCount:       deal.ViewCount,
		ClickCount:      deal.ClickCount,
		CreatedAt:       deal.CreatedAt,
		UpdatedAt:       deal.UpdatedAt,
	}
}

func toDealResponses(deals []*entity.Deal) []*DealResponse {
	out := make([]*DealResponse, 0, len(deals))
	for _, deal := range deals {
		out = append(out, toDealResponse(deal))
	}

	return out
}

func toWatchlistResponses(items []*entity.WatchlistItem) []*WatchlistItemResponse {
	out := make([]*WatchlistItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &WatchlistItemResponse{
			DealID:    item.DealID,
			Deal:      toDealResponse(item.Deal),
			CreatedAt: item.CreatedAt,
		})
	}

	return out
}

func toPriceAlertResponse(alert *entity.PriceAlert) *PriceAlertResponse {
	return &PriceAlertResponse{
		ID:          alert.ID,
		DealID:      alert.DealID,
		TargetPrice: alert.TargetPrice,
		Notified:    alert.Notified,
		Deal:        toDealResponse(alert.Deal),
		CreatedAt:   alert.CreatedAt,
		UpdatedAt:   alert.UpdatedAt,
	}
}

func toPriceAlertResponses(alerts []*entity.PriceAlert) []*PriceAlertResponse {
	out := make([]*PriceAlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		out = append(out, toPriceAlertResponse(alert))
	}

	return out
}

func nonNilStrings(ss []string) []string {
	if ss == nil {
		return []string{}
	}

	return ss
}
