package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/delivery/http/response"
	"dealsmarket/internal/domain/access"
	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// statusPollSeconds is how often the pending and rejected pages re-check the live status.
	statusPollSeconds = 30
	dashboardRecent   = 5
	loadFailed        = "Failed to load"
)

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	AccessUC     usecase.AccessUsecase
	DealUC       usecase.DealUsecase
	RetailerUC   usecase.RetailerUsecase
	WatchlistUC  usecase.WatchlistUsecase
	PriceAlertUC usecase.PriceAlertUsecase
	ProfileUC    usecase.ProfileUsecase
	CategoryUC   usecase.CategoryUsecase
	Logger       *slog.Logger
}

// PageHandler renders the JSON page models of the navigational routes. The edge gate has
// already run; retailer pages additionally apply their own guard.
type PageHandler struct {
	accessUC     usecase.AccessUsecase
	dealUC       usecase.DealUsecase
	retailerUC   usecase.RetailerUsecase
	watchlistUC  usecase.WatchlistUsecase
	priceAlertUC usecase.PriceAlertUsecase
	profileUC    usecase.ProfileUsecase
	categoryUC   usecase.CategoryUsecase
	logger       *slog.Logger
}

// NewPageHandler is the constructor for PageHandler.
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		accessUC:     params.AccessUC,
		dealUC:       params.DealUC,
		retailerUC:   params.RetailerUC,
		watchlistUC:  params.WatchlistUC,
		priceAlertUC: params.PriceAlertUC,
		profileUC:    params.ProfileUC,
		categoryUC:   params.CategoryUC,
		logger:       params.Logger,
	}
}

// PageModel is the payload of a rendered page.
type PageModel struct {
	Page   string            `json:"page"`
	User   *IdentityResponse `json:"user,omitempty"`
	Notice string            `json:"notice,omitempty"`
	// Error is set when part of the page could not be loaded; Data then holds empty values.
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// StatusPageData backs the pending and rejected landing pages.
type StatusPageData struct {
	Status              entity.RetailerStatus `json:"status"`
	RejectionReason     *string               `json:"rejectionReason"`
	StatusEndpoint      string                `json:"statusEndpoint"`
	PollIntervalSeconds int                   `json:"pollIntervalSeconds"`
}

func (h *PageHandler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, h.logger)
}

func (h *PageHandler) newModel(c echo.Context, page string) *PageModel {
	model := &PageModel{Page: page}
	if identity := deliverycontext.GetIdentity(c); identity != nil {
		user := toIdentityResponse(identity)
		model.User = &user
	}
	if c.QueryParam("error") == "unauthorized" {
		model.Notice = "unauthorized"
	}

	return model
}

func (h *PageHandler) render(c echo.Context, model *PageModel) error {
	return response.Success(c, http.StatusOK, model)
}

// degrade logs a load failure and marks the model instead of failing the render.
func (h *PageHandler) degrade(c echo.Context, model *PageModel, err error) {
	ctx := c.Request().Context()
	h.log(ctx).WarnContext(ctx, "Page data failed to load",
		slog.String("page", model.Page),
		slog.Any("error", err),
	)
	model.Error = loadFailed
}

// notFoundOr renders 404 for missing resources and a degraded model for anything else.
func (h *PageHandler) notFoundOr(c echo.Context, model *PageModel, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() == http.StatusNotFound {
		return response.HandleAppError(c, err)
	}

	h.degrade(c, model, err)

	return h.render(c, model)
}

// guard applies the retailer page decision table. It returns false after writing a redirect.
func (h *PageHandler) guard(c echo.Context, page access.Page) (*entity.AccessProfile, bool, error) {
	decision, profile := h.accessUC.GuardPage(c.Request().Context(), page, deliverycontext.GetIdentity(c))
	if !decision.Allowed {
		return nil, false, c.Redirect(http.StatusSeeOther, decision.RedirectTo)
	}

	return profile, true, nil
}

// --- Public pages ---

// Home renders the deal catalogue with the category navigation.
func (h *PageHandler) Home(c echo.Context) error {
	model := h.newModel(c, "home")
	ctx := c.Request().Context()

	categories, err := h.categoryUC.ListActive(ctx)
	if err != nil {
		h.degrade(c, model, err)
		categories = []*entity.Category{}
	}

	model.Data = map[string]any{
		"categories": categories,
		"deals":      dealPageResponse(h.dealUC.ListPublic(ctx, dealListInput(c))),
	}

	return h.render(c, model)
}

// DealDetail renders one visible deal. Signed-in users also see whether they saved it.
func (h *PageHandler) DealDetail(c echo.Context) error {
	model := h.newModel(c, "deal")

	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrDealNotFound)
	}

	ctx := c.Request().Context()
	deal, err := h.dealUC.GetPublic(ctx, dealID)
	if err != nil {
		return h.notFoundOr(c, model, err)
	}

	data := map[string]any{"deal": toDealResponse(deal)}
	if userID, ok := deliverycontext.GetUserID(c); ok {
		saved, err := h.watchlistUC.Contains(ctx, userID, dealID)
		if err != nil {
			h.degrade(c, model, err)
		}
		data["saved"] = saved
	}
	model.Data = data

	return h.render(c, model)
}

// Login renders the sign-in page.
func (h *PageHandler) Login(c echo.Context) error {
	model := h.newModel(c, "login")
	model.Data = map[string]string{"returnUrl": safeReturnURL(c.QueryParam("returnUrl"))}

	return h.render(c, model)
}

// Signup renders the account creation page.
func (h *PageHandler) Signup(c echo.Context) error {
	model := h.newModel(c, "signup")
	model.Data = map[string]string{"returnUrl": safeReturnURL(c.QueryParam("returnUrl"))}

	return h.render(c, model)
}

// --- Consumer-protected pages ---

// Watchlist renders the caller's saved deals.
func (h *PageHandler) Watchlist(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, access.LoginWithReturn(c.Request().URL.RequestURI()))
	}

	model := h.newModel(c, "watchlist")
	items, err := h.watchlistUC.List(c.Request().Context(), userID)
	if err != nil {
		h.degrade(c, model, err)
	}
	model.Data = map[string]any{"items": toWatchlistResponses(items)}

	return h.render(c, model)
}

// Alerts renders the caller's price alerts.
func (h *PageHandler) Alerts(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, access.LoginWithReturn(c.Request().URL.RequestURI()))
	}

	model := h.newModel(c, "alerts")
	alerts, err := h.priceAlertUC.List(c.Request().Context(), userID)
	if err != nil {
		h.degrade(c, model, err)
	}
	model.Data = map[string]any{"alerts": toPriceAlertResponses(alerts)}

	return h.render(c, model)
}

// Profile renders the caller's account page.
func (h *PageHandler) Profile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return c.Redirect(http.StatusSeeOther, access.LoginWithReturn(c.Request().URL.RequestURI()))
	}

	model := h.newModel(c, "profile")
	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		h.degrade(c, model, err)
	} else {
		model.Data = map[string]any{"profile": toProfileResponse(profile)}
	}

	return h.render(c, model)
}

// --- Retailer pages ---

// RetailerApply renders the application form for users without a retailer.
func (h *PageHandler) RetailerApply(c echo.Context) error {
	if _, ok, err := h.guard(c, access.PageApply); !ok {
		return err
	}

	model := h.newModel(c, "retailer-apply")
	model.Data = map[string]any{
		"showForm":         true,
		"acknowledgements": []string{"acceptTerms", "acceptCommission", "confirmAuthority"},
		"submitEndpoint":   "/api/retailer/apply",
	}

	return h.render(c, model)
}

// RetailerPending renders the polling landing page of a pending application.
func (h *PageHandler) RetailerPending(c echo.Context) error {
	profile, ok, err := h.guard(c, access.PagePending)
	if !ok {
		return err
	}

	model := h.newModel(c, "retailer-pending")
	model.Data = statusPageData(profile)

	return h.render(c, model)
}

// RetailerRejected renders the polling landing page of a rejected application.
func (h *PageHandler) RetailerRejected(c echo.Context) error {
	profile, ok, err := h.guard(c, access.PageRejected)
	if !ok {
		return err
	}

	model := h.newModel(c, "retailer-rejected")
	model.Data = statusPageData(profile)

	return h.render(c, model)
}

// RetailerDashboard renders the retailer overview with the latest deals.
func (h *PageHandler) RetailerDashboard(c echo.Context) error {
	if _, ok, err := h.guard(c, access.PageDashboard); !ok {
		return err
	}

	model := h.newModel(c, "retailer-dashboard")
	userID, _ := deliverycontext.GetUserID(c)
	ctx := c.Request().Context()

	retailer, err := h.retailerUC.GetOwn(ctx, userID)
	if err != nil {
		h.degrade(c, model, err)
	}

	recent := &usecase.DealPage{Page: 1, PageSize: dashboardRecent}
	if page, err := h.dealUC.ListOwn(ctx, userID, nil, 1, dashboardRecent); err != nil {
		h.degrade(c, model, err)
	} else {
		recent = page
	}

	model.Data = map[string]any{
		"retailer":    toRetailerResponse(retailer),
		"recentDeals": dealPageResponse(recent),
	}

	return h.render(c, model)
}

// RetailerDeals renders the retailer's deal management list.
func (h *PageHandler) RetailerDeals(c echo.Context) error {
	if _, ok, err := h.guard(c, access.PageDashboard); !ok {
		return err
	}

	model := h.newModel(c, "retailer-deals")
	status, valid := dealStatusQuery(c)
	if !valid {
		status = nil
	}

	userID, _ := deliverycontext.GetUserID(c)
	page, pageSize := pagination(c)

	deals := &usecase.DealPage{Page: max(page, 1), PageSize: pageSize}
	if result, err := h.dealUC.ListOwn(c.Request().Context(), userID, status, page, pageSize); err != nil {
		h.degrade(c, model, err)
	} else {
		deals = result
	}
	model.Data = map[string]any{"deals": dealPageResponse(deals)}

	return h.render(c, model)
}

// RetailerDealDetail renders one of the retailer's deals for editing.
func (h *PageHandler) RetailerDealDetail(c echo.Context) error {
	if _, ok, err := h.guard(c, access.PageDashboard); !ok {
		return err
	}

	model := h.newModel(c, "retailer-deal")
	dealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrDealNotFound)
	}

	userID, _ := deliverycontext.GetUserID(c)
	deal, err := h.dealUC.GetOwn(c.Request().Context(), userID, dealID)
	if err != nil {
		return h.notFoundOr(c, model, err)
	}
	model.Data = map[string]any{"deal": toDealResponse(deal)}

	return h.render(c, model)
}

// RetailerSettings renders the retailer profile and settings form.
func (h *PageHandler) RetailerSettings(c echo.Context) error {
	if _, ok, err := h.guard(c, access.PageDashboard); !ok {
		return err
	}

	model := h.newModel(c, "retailer-settings")
	userID, _ := deliverycontext.GetUserID(c)

	retailer, err := h.retailerUC.GetOwn(c.Request().Context(), userID)
	if err != nil {
		h.degrade(c, model, err)
	} else {
		model.Data = map[string]any{"retailer": toRetailerResponse(retailer)}
	}

	return h.render(c, model)
}

func statusPageData(profile *entity.AccessProfile) *StatusPageData {
	return &StatusPageData{
		Status:              profile.RetailerStatus,
		RejectionReason:     profile.RejectionReason,
		StatusEndpoint:      "/api/retailer/status",
		PollIntervalSeconds: statusPollSeconds,
	}
}

// safeReturnURL keeps only same-site absolute paths so the login page cannot become an open redirect.
func safeReturnURL(raw string) string {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return ""
	}

	return raw
}
