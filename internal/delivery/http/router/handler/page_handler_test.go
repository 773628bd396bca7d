package handler

import (
	"net/http"
	"testing"

	"dealsmarket/internal/domain/access"
	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	mockUsecase "dealsmarket/internal/mocks/usecase"
	"dealsmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pageMocks struct {
	access    *mockUsecase.MockAccessUsecase
	deal      *mockUsecase.MockDealUsecase
	retailer  *mockUsecase.MockRetailerUsecase
	watchlist *mockUsecase.MockWatchlistUsecase
	category  *mockUsecase.MockCategoryUsecase
}

func newPageHandler(t *testing.T) (*PageHandler, pageMocks) {
	m := pageMocks{
		access:    mockUsecase.NewMockAccessUsecase(t),
		deal:      mockUsecase.NewMockDealUsecase(t),
		retailer:  mockUsecase.NewMockRetailerUsecase(t),
		watchlist: mockUsecase.NewMockWatchlistUsecase(t),
		category:  mockUsecase.NewMockCategoryUsecase(t),
	}

	return NewPageHandler(PageHandlerParams{
		AccessUC:     m.access,
		DealUC:       m.deal,
		RetailerUC:   m.retailer,
		WatchlistUC:  m.watchlist,
		PriceAlertUC: mockUsecase.NewMockPriceAlertUsecase(t),
		ProfileUC:    mockUsecase.NewMockProfileUsecase(t),
		CategoryUC:   m.category,
		Logger:       testLogger(),
	}), m
}

func TestPageHandler_Home_DegradesOnCategoryFailure(t *testing.T) {
	h, m := newPageHandler(t)
	m.category.EXPECT().ListActive(mock.Anything).Return(nil, errors.New("connection reset"))
	m.deal.EXPECT().ListPublic(mock.Anything, mock.Anything).
		Return(&usecase.DealPage{Items: []*entity.Deal{}, Page: 1, PageSize: 20})

	c, rec := newRequest(http.MethodGet, "/", "", nil)

	require.NoError(t, h.Home(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"page": "home",
		"error": "Failed to load",
		"data": {
			"categories": [],
			"deals": {"items": [], "pagination": {"page": 1, "pageSize": 20, "total": 0}}
		}
	}`, string(decode(t, rec).Data))
}

func TestPageHandler_Home_UnauthorizedNotice(t *testing.T) {
	h, m := newPageHandler(t)
	m.category.EXPECT().ListActive(mock.Anything).Return([]*entity.Category{}, nil)
	m.deal.EXPECT().ListPublic(mock.Anything, mock.Anything).Return(&usecase.DealPage{Items: []*entity.Deal{}})

	c, rec := newRequest(http.MethodGet, "/?error=unauthorized", "", nil)

	require.NoError(t, h.Home(c))
	assert.Contains(t, string(decode(t, rec).Data), `"notice":"unauthorized"`)
}

func TestPageHandler_DealDetail(t *testing.T) {
	dealID := uuid.New()

	t.Run("missing deal is a 404", func(t *testing.T) {
		h, m := newPageHandler(t)
		m.deal.EXPECT().GetPublic(mock.Anything, dealID).Return(nil, domainerrors.ErrDealNotFound)

		c, rec := newRequest(http.MethodGet, "/deals/"+dealID.String(), "", nil)
		withParams(c, []string{"id"}, []string{dealID.String()})

		require.NoError(t, h.DealDetail(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure degrades", func(t *testing.T) {
		h, m := newPageHandler(t)
		m.deal.EXPECT().GetPublic(mock.Anything, dealID).Return(nil, errors.New("timeout"))

		c, rec := newRequest(http.MethodGet, "/deals/"+dealID.String(), "", nil)
		withParams(c, []string{"id"}, []string{dealID.String()})

		require.NoError(t, h.DealDetail(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"error":"Failed to load"`)
	})

	t.Run("signed-in user sees saved flag", func(t *testing.T) {
		h, m := newPageHandler(t)
		identity := newIdentity()
		m.deal.EXPECT().GetPublic(mock.Anything, dealID).
			Return(&entity.Deal{ID: dealID, Status: entity.DealStatusApproved, IsActive: true}, nil)
		m.watchlist.EXPECT().Contains(mock.Anything, identity.ID, dealID).Return(true, nil)

		c, rec := newRequest(http.MethodGet, "/deals/"+dealID.String(), "", identity)
		withParams(c, []string{"id"}, []string{dealID.String()})

		require.NoError(t, h.DealDetail(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"saved":true`)
	})
}

func TestPageHandler_RetailerDashboard_GuardRedirects(t *testing.T) {
	h, m := newPageHandler(t)
	identity := newIdentity()
	m.access.EXPECT().GuardPage(mock.Anything, access.PageDashboard, identity).
		Return(access.Decision{RedirectTo: access.PathRetailerPending}, nil)

	c, rec := newRequest(http.MethodGet, "/retailer/dashboard", "", identity)

	require.NoError(t, h.RetailerDashboard(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, access.PathRetailerPending, rec.Header().Get("Location"))
}

func TestPageHandler_RetailerRejected_ShowsReason(t *testing.T) {
	h, m := newPageHandler(t)
	identity := newIdentity()
	reason := "Missing documents"
	retailerID := uuid.New()
	m.access.EXPECT().GuardPage(mock.Anything, access.PageRejected, identity).
		Return(access.Decision{Allowed: true}, &entity.AccessProfile{
			UserID:          identity.ID,
			Role:            entity.RoleRetailer,
			RetailerID:      &retailerID,
			RetailerStatus:  entity.RetailerStatusRejected,
			RejectionReason: &reason,
		})

	c, rec := newRequest(http.MethodGet, "/retailer/rejected", "", identity)

	require.NoError(t, h.RetailerRejected(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data),
		`"data":{"status":"rejected","rejectionReason":"Missing documents","statusEndpoint":"/api/retailer/status","pollIntervalSeconds":30}`)
}

func TestPageHandler_RetailerDashboard_DegradesOnDealFailure(t *testing.T) {
	h, m := newPageHandler(t)
	identity := newIdentity()
	m.access.EXPECT().GuardPage(mock.Anything, access.PageDashboard, identity).
		Return(access.Decision{Allowed: true}, &entity.AccessProfile{UserID: identity.ID, Role: entity.RoleRetailer})
	m.retailer.EXPECT().GetOwn(mock.Anything, identity.ID).
		Return(&entity.Retailer{Name: "Acme", Status: entity.RetailerStatusApproved}, nil)
	m.deal.EXPECT().ListOwn(mock.Anything, identity.ID, (*entity.DealStatus)(nil), 1, 5).
		Return(nil, errors.New("deadlock"))

	c, rec := newRequest(http.MethodGet, "/retailer/dashboard", "", identity)

	require.NoError(t, h.RetailerDashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	data := string(decode(t, rec).Data)
	assert.Contains(t, data, `"error":"Failed to load"`)
	assert.Contains(t, data, `"recentDeals":{"items":[],"pagination":{"page":1,"pageSize":5,"total":0}}`)
}

func TestSafeReturnURL(t *testing.T) {
	tests := map[string]string{
		"/retailer/dashboard":  "/retailer/dashboard",
		"/deals/1?ref=home":    "/deals/1?ref=home",
		"https://evil.example": "",
		"//evil.example/path":  "",
		"/\\evil.example":      "",
		"":                     "",
		"javascript:alert(1)":  "",
	}

	for input, want := range tests {
		assert.Equal(t, want, safeReturnURL(input), input)
	}
}

func TestPageHandler_Alerts_AnonymousRedirectKeepsQuery(t *testing.T) {
	h, _ := newPageHandler(t)

	c, rec := newRequest(http.MethodGet, "/alerts?sort=newest", "", nil)

	require.NoError(t, h.Alerts(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, access.LoginWithReturn("/alerts?sort=newest"), rec.Header().Get("Location"))
}
