package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/delivery/http/response"
	"dealsmarket/internal/domain/entity"
	"dealsmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	RetailerUC usecase.RetailerUsecase
	DealUC     usecase.DealUsecase
	Logger     *slog.Logger
}

// AdminHandler serves the review queues for retailers and deals.
type AdminHandler struct {
	retailerUC usecase.RetailerUsecase
	dealUC     usecase.DealUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		retailerUC: params.RetailerUC,
		dealUC:     params.DealUC,
		logger:     params.Logger,
	}
}

// ReviewRequest represents an admin decision.
type ReviewRequest struct {
	Status          string  `json:"status" validate:"required,oneof=approved rejected"`
	RejectionReason *string `json:"rejectionReason" validate:"omitempty,max=1000"`
}

func (r *ReviewRequest) toInput() *usecase.ReviewInput {
	return &usecase.ReviewInput{
		Approve:         r.Status == "approved",
		RejectionReason: r.RejectionReason,
	}
}

// ListRetailers lists retailer accounts, optionally filtered by ?status.
func (h *AdminHandler) ListRetailers(c echo.Context) error {
	var status *entity.RetailerStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.RetailerStatus(raw)
		if !s.IsValid() {
			return response.BadRequest(c, "INVALID_STATUS", "Unknown retailer status")
		}
		status = &s
	}

	page, pageSize := pagination(c)
	retailers, err := h.retailerUC.List(c.Request().Context(), status, page, pageSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Paged[*RetailerResponse]{
		Items: toRetailerResponses(retailers.Items),
		Pagination: response.PageMeta{
			Page:     retailers.Page,
			PageSize: retailers.PageSize,
			Total:    retailers.Total,
		},
	})
}

// ReviewRetailer approves or rejects a retailer application.
func (h *AdminHandler) ReviewRetailer(c echo.Context) error {
	adminID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	retailerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "retailer")
	}

	var req ReviewRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	retailer, err := h.retailerUC.Review(c.Request().Context(), adminID, retailerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRetailerResponse(retailer))
}

// ListDeals lists deals for review, optionally filtered by ?status.
func (h *AdminHandler) ListDeals(c echo.Context) error {
	status, ok := dealStatusQuery(c)
	if !ok {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown deal status")
	}

	page, pageSize := pagination(c)
	deals, err := h.dealUC.ListForReview(c.Request().Context(), status, page, pageSize)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dealPageResponse(deals))
}

// ReviewDeal approves or rejects a deal. Approval fires matching price alerts.
func (h *AdminHandler) ReviewDeal(c echo.Context) error {
	adminID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidID(c, "deal")
	}

	var req ReviewRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	deal, err := h.dealUC.Review(c.Request().Context(), adminID, dealID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDealResponse(deal))
}
