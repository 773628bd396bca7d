package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/delivery/http/response"
	"dealsmarket/internal/domain/access"
	"dealsmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RetailerHandlerParams holds dependencies for RetailerHandler, injected by Fx.
type RetailerHandlerParams struct {
	fx.In

	RetailerUC usecase.RetailerUsecase
	Logger     *slog.Logger
}

// RetailerHandler serves the retailer application and account endpoints.
type RetailerHandler struct {
	retailerUC usecase.RetailerUsecase
	logger     *slog.Logger
}

// NewRetailerHandler is the constructor for RetailerHandler.
func NewRetailerHandler(params RetailerHandlerParams) *RetailerHandler {
	return &RetailerHandler{
		retailerUC: params.RetailerUC,
		logger:     params.Logger,
	}
}

// ApplyRetailerRequest represents the multi-step retailer application form.
type ApplyRetailerRequest struct {
	BusinessName       string `json:"businessName" validate:"required,max=200"`
	LegalName          string `json:"legalName" validate:"required,max=200"`
	BusinessType       string `json:"businessType" validate:"required,max=100"`
	RegistrationNumber string `json:"registrationNumber" validate:"max=100"`
	WebsiteURL         string `json:"websiteUrl" validate:"required,url"`
	Description        string `json:"description" validate:"max=2000"`
	LogoURL            string `json:"logoUrl" validate:"omitempty,url"`

	ContactName  string `json:"contactName" validate:"required,max=200"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	ContactPhone string `json:"contactPhone" validate:"max=50"`
	Address      string `json:"address" validate:"max=500"`
	City         string `json:"city" validate:"max=100"`
	Country      string `json:"country" validate:"required,max=100"`

	ProductCategories []string `json:"productCategories" validate:"max=20,dive,required,max=100"`
	AverageDiscount   float64  `json:"averageDiscount" validate:"gte=0,lte=100"`
	SKUCount          int      `json:"skuCount" validate:"gte=0"`
	MonthlyDeals      int      `json:"monthlyDeals" validate:"gte=0"`

	SalesChannels   []string `json:"salesChannels" validate:"max=20,dive,required,max=100"`
	ReturnPolicyURL string   `json:"returnPolicyUrl" validate:"omitempty,url"`
	ShippingRegions string   `json:"shippingRegions" validate:"max=500"`

	AcceptTerms      bool `json:"acceptTerms"`
	AcceptCommission bool `json:"acceptCommission"`
	ConfirmAuthority bool `json:"confirmAuthority"`
}

// UpdateRetailerProfileRequest patches the public retailer profile. Omitted fields are unchanged.
type UpdateRetailerProfileRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,url"`
	WebsiteURL   *string `json:"websiteUrl" validate:"omitempty,url"`
	ContactName  *string `json:"contactName" validate:"omitempty,max=200"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone *string `json:"contactPhone" validate:"omitempty,max=50"`
	Address      *string `json:"address" validate:"omitempty,max=500"`
	City         *string `json:"city" validate:"omitempty,max=100"`
	Country      *string `json:"country" validate:"omitempty,max=100"`
}

// UpdateRetailerSettingsRequest replaces the operational settings of a retailer.
type UpdateRetailerSettingsRequest struct {
	AffiliateID     *string  `json:"affiliateId" validate:"omitempty,max=100"`
	SalesChannels   []string `json:"salesChannels" validate:"max=20,dive,required,max=100"`
	ReturnPolicyURL string   `json:"returnPolicyUrl" validate:"omitempty,url"`
	ShippingRegions string   `json:"shippingRegions" validate:"max=500"`
}

// Apply submits the caller's retailer application.
func (h *RetailerHandler) Apply(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req ApplyRetailerRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	retailer, err := h.retailerUC.Apply(c.Request().Context(), userID, &usecase.ApplyRetailerInput{
		BusinessName:       req.BusinessName,
		LegalName:          req.LegalName,
		BusinessType:       req.BusinessType,
		RegistrationNumber: req.RegistrationNumber,
		WebsiteURL:         req.WebsiteURL,
		Description:        req.Description,
		LogoURL:            req.LogoURL,
		ContactName:        req.ContactName,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		Address:            req.Address,
		City:               req.City,
		Country:            req.Country,
		ProductCategories:  req.ProductCategories,
		AverageDiscount:    req.AverageDiscount,
		SKUCount:           req.SKUCount,
		MonthlyDeals:       req.MonthlyDeals,
		SalesChannels:      req.SalesChannels,
		ReturnPolicyURL:    req.ReturnPolicyURL,
		ShippingRegions:    req.ShippingRegions,
		AcceptTerms:        req.AcceptTerms,
		AcceptCommission:   req.AcceptCommission,
		ConfirmAuthority:   req.ConfirmAuthority,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"retailer":   toRetailerResponse(retailer),
		"redirectTo": access.PathRetailerPending,
	})
}

// Status returns the live application status for the polling landing pages.
func (h *RetailerHandler) Status(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	status, err := h.retailerUC.GetStatus(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRetailerStatusResponse(status))
}

// GetProfile returns the caller's retailer.
func (h *RetailerHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	retailer, err := h.retailerUC.GetOwn(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRetailerResponse(retailer))
}

// UpdateProfile patches the caller's retailer profile.
func (h *RetailerHandler) UpdateProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req UpdateRetailerProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	retailer, err := h.retailerUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateRetailerProfileInput{
		Name:         req.Name,
		Description:  req.Description,
		LogoURL:      req.LogoURL,
		WebsiteURL:   req.WebsiteURL,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRetailerResponse(retailer))
}

// UpdateSettings replaces the caller's retailer settings.
func (h *RetailerHandler) UpdateSettings(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req UpdateRetailerSettingsRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	retailer, err := h.retailerUC.UpdateSettings(c.Request().Context(), userID, &usecase.UpdateRetailerSettingsInput{
		AffiliateID:     req.AffiliateID,
		SalesChannels:   req.SalesChannels,
		ReturnPolicyURL: req.ReturnPolicyURL,
		ShippingRegions: req.ShippingRegions,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRetailerResponse(retailer))
}
