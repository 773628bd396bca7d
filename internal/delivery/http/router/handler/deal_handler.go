package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/delivery/http/response"
	"dealsmarket/internal/domain/entity"
	"dealsmarket/internal/domain/repository"
	"dealsmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DealHandlerParams holds dependencies for DealHandler, injected by Fx.
type DealHandlerParams struct {
	fx.In

	DealUC usecase.DealUsecase
	Logger *slog.Logger
}

// DealHandler serves retailer deal management and the public catalogue.
type DealHandler struct {
	dealUC usecase.DealUsecase
	logger *slog.Logger
}

// NewDealHandler is the constructor for DealHandler.
func NewDealHandler(params DealHandlerParams) *DealHandler {
	return &DealHandler{
		dealUC: params.DealUC,
		logger: params.Logger,
	}
}

// DealRequest represents the editable fields of a deal.
type DealRequest struct {
	Title           string     `json:"title" validate:"required,max=200"`
	Description     string     `json:"description" validate:"max=5000"`
	CategoryID      *uuid.UUID `json:"categoryId"`
	OriginalPrice   float64    `json:"originalPrice" validate:"required,gt=0"`
	DiscountedPrice float64    `json:"discountedPrice" validate:"required,gt=0"`
	Quantity        int        `json:"quantity" validate:"gte=0"`
	DealURL         string     `json:"dealUrl" validate:"required,url"`
	ImageURL        string     `json:"imageUrl" validate:"omitempty,url"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	IsActive        bool       `json:"isActive"`
}

func (r *DealRequest) toInput() *usecase.DealInput {
	return &usecase.DealInput{
		Title:           r.Title,
		Description:     r.Description,
		CategoryID:      r.CategoryID,
		OriginalPrice:   r.OriginalPrice,
		DiscountedPrice: r.DiscountedPrice,
		Quantity:        r.Quantity,
		DealURL:         r.DealURL,
		ImageURL:        r.ImageURL,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IsActive:        r.IsActive,
	}
}

// --- Retailer endpoints ---

// ListOwn lists the caller's deals, optionally filtered by ?status.
func (h *DealHandler) ListOwn(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	status, ok := dealStatusQuery(c)
	if !ok {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown deal status")
	}

	page, pageSize := pagination(c)
	deals, err := h.dealUC.ListOwn(c.Request().Context(), userID, status, page, pageSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dealPageResponse(deals))
}

// Create submits a new deal for review.
func (h *DealHandler) Create(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req DealRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	deal, err := h.dealUC.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toDealResponse(deal))
}

// GetOwn returns one of the caller's deals.
func (h *DealHandler) GetOwn(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "deal")
	}

	deal, err := h.dealUC.GetOwn(c.Request().Context(), userID, dealID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDealResponse(deal))
}

// Update saves changes to one of the caller's deals and sends it back to review.
func (h *DealHandler) Update(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "deal")
	}

	var req DealRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	deal, err := h.dealUC.Edit(c.Request().Context(), userID, dealID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDealResponse(deal))
}

// Delete hard-removes one of the caller's deals.
func (h *DealHandler) Delete(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "deal")
	}

	if err := h.dealUC.Delete(c.Request().Context(), userID, dealID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}

// Pause hides one of the caller's approved deals.
func (h *DealHandler) Pause(c echo.Context) error {
	return h.toggle(c, h.dealUC.Pause)
}

// Resume shows one of the caller's paused deals again.
func (h *DealHandler) Resume(c echo.Context) error {
	return h.toggle(c, h.dealUC.Resume)
}

func (h *DealHandler) toggle(c echo.Context, op func(ctx context.Context, userID, dealID uuid.UUID) (*entity.Deal, error)) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "deal")
	}

	deal, err := op(c.Request().Context(), userID, dealID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDealResponse(deal))
}

// --- Public endpoints ---

// ListPublic lists visible deals. Store failures degrade to an empty page.
func (h *DealHandler) ListPublic(c echo.Context) error {
	return response.Success(c, http.StatusOK, dealPageResponse(h.dealUC.ListPublic(c.Request().Context(), dealListInput(c))))
}

// GetPublic returns a visible deal and counts the view.
func (h *DealHandler) GetPublic(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "deal")
	}

	deal, err := h.dealUC.GetPublic(c.Request().Context(), dealID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDealResponse(deal))
}

// TrackClick counts an outbound click and returns the retailer URL to follow.
func (h *DealHandler) TrackClick(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "deal")
	}

	deal, err := h.dealUC.TrackClick(c.Request().Context(), dealID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"dealUrl": deal.DealURL})
}

// ShareQR renders a PNG QR code linking to the deal.
func (h *DealHandler) ShareQR(c echo.Context) error {
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "deal")
	}

	png, err := h.dealUC.ShareQR(c.Request().Context(), dealID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

func dealListInput(c echo.Context) *usecase.DealListInput {
	page, pageSize := pagination(c)

	return &usecase.DealListInput{
		CategorySlug: c.QueryParam("category"),
		RetailerSlug: c.QueryParam("retailer"),
		Query:        strings.TrimSpace(c.QueryParam("q")),
		Sort:         dealSort(c.QueryParam("sort")),
		Page:         page,
		PageSize:     pageSize,
	}
}

func dealSort(raw string) repository.DealSort {
	switch sort := repository.DealSort(raw); sort {
	case repository.DealSortPriceAsc, repository.DealSortPriceDesc, repository.DealSortDiscount:
		return sort
	default:
		return repository.DealSortNewest
	}
}

// dealStatusQuery parses ?status. An empty value means no filter; an unknown value is rejected.
func dealStatusQuery(c echo.Context) (*entity.DealStatus, bool) {
	raw := c.QueryParam("status")
	if raw == "" {
		return nil, true
	}

	status := entity.DealStatus(raw)
	if !status.IsValid() {
		return nil, false
	}

	return &status, true
}
