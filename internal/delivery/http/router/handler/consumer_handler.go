package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/delivery/http/response"
	"dealsmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConsumerHandlerParams holds dependencies for ConsumerHandler, injected by Fx.
type ConsumerHandlerParams struct {
	fx.In

	WatchlistUC  usecase.WatchlistUsecase
	PriceAlertUC usecase.PriceAlertUsecase
	ProfileUC    usecase.ProfileUsecase
	CategoryUC   usecase.CategoryUsecase
	Logger       *slog.Logger
}

// ConsumerHandler serves the watchlist, price alerts, profile and category endpoints.
type ConsumerHandler struct {
	watchlistUC  usecase.WatchlistUsecase
	priceAlertUC usecase.PriceAlertUsecase
	profileUC    usecase.ProfileUsecase
	categoryUC   usecase.CategoryUsecase
	logger       *slog.Logger
}

// NewConsumerHandler is the constructor for ConsumerHandler.
func NewConsumerHandler(params ConsumerHandlerParams) *ConsumerHandler {
	return &ConsumerHandler{
		watchlistUC:  params.WatchlistUC,
		priceAlertUC: params.PriceAlertUC,
		profileUC:    params.ProfileUC,
		categoryUC:   params.CategoryUC,
		logger:       params.Logger,
	}
}

// WatchlistRequest represents the request body for saving a deal.
type WatchlistRequest struct {
	DealID uuid.UUID `json:"dealId" validate:"required"`
}

// PriceAlertRequest represents the request body for creating or replacing a price alert.
type PriceAlertRequest struct {
	DealID      uuid.UUID `json:"dealId" validate:"required"`
	TargetPrice float64   `json:"targetPrice" validate:"required,gt=0"`
}

// UpdateProfileRequest represents the request body for renaming the account.
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// --- Watchlist ---

// ListWatchlist returns the caller's saved deals.
func (h *ConsumerHandler) ListWatchlist(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	items, err := h.watchlistUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWatchlistResponses(items))
}

// AddToWatchlist saves a deal. Saving it twice is not an error.
func (h *ConsumerHandler) AddToWatchlist(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req WatchlistRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.watchlistUC.Add(c.Request().Context(), userID, req.DealID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}

// RemoveFromWatchlist deletes a saved deal.
func (h *ConsumerHandler) RemoveFromWatchlist(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	dealID, err := uuid.Parse(c.Param("dealId"))
	if err != nil {
		return invalidID(c, "deal")
	}

	if err := h.watchlistUC.Remove(c.Request().Context(), userID, dealID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}

// --- Price alerts ---

// ListAlerts returns the caller's price alerts.
func (h *ConsumerHandler) ListAlerts(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	alerts, err := h.priceAlertUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPriceAlertResponses(alerts))
}

// CreateAlert creates or replaces the caller's alert on a deal.
func (h *ConsumerHandler) CreateAlert(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req PriceAlertRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	alert, err := h.priceAlertUC.Create(c.Request().Context(), userID, req.DealID, req.TargetPrice)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPriceAlertResponse(alert))
}

// DeleteAlert removes one of the caller's price alerts.
func (h *ConsumerHandler) DeleteAlert(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "alert")
	}

	if err := h.priceAlertUC.Delete(c.Request().Context(), userID, alertID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true})
}

// --- Profile ---

// GetProfile returns the caller's profile.
func (h *ConsumerHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile renames the caller's account.
func (h *ConsumerHandler) UpdateProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req UpdateProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	profile, err := h.profileUC.UpdateName(c.Request().Context(), userID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// --- Categories ---

// ListCategories returns the active categories in display order.
func (h *ConsumerHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListActive(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}
