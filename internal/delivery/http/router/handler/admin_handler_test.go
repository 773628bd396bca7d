package handler

import (
	"net/http"
	"testing"

	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	mockUsecase "dealsmarket/internal/mocks/usecase"
	"dealsmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *mockUsecase.MockRetailerUsecase, *mockUsecase.MockDealUsecase) {
	retailerUC := mockUsecase.NewMockRetailerUsecase(t)
	dealUC := mockUsecase.NewMockDealUsecase(t)

	return NewAdminHandler(AdminHandlerParams{
		RetailerUC: retailerUC,
		DealUC:     dealUC,
		Logger:     testLogger(),
	}), retailerUC, dealUC
}

func TestAdminHandler_ReviewRetailer(t *testing.T) {
	admin := newIdentity()
	retailerID := uuid.New()
	reason := "Incomplete registration"

	tests := []struct {
		name       string
		body       string
		setup      func(m *mockUsecase.MockRetailerUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "approve",
			body: `{"status":"approved"}`,
			setup: func(m *mockUsecase.MockRetailerUsecase) {
				m.EXPECT().Review(mock.Anything, admin.ID, retailerID, &usecase.ReviewInput{Approve: true}).
					Return(&entity.Retailer{ID: retailerID, Status: entity.RetailerStatusApproved, IsActive: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "reject with reason",
			body: `{"status":"rejected","rejectionReason":"` + reason + `"}`,
			setup: func(m *mockUsecase.MockRetailerUsecase) {
				m.EXPECT().Review(mock.Anything, admin.ID, retailerID, &usecase.ReviewInput{Approve: false, RejectionReason: &reason}).
					Return(&entity.Retailer{ID: retailerID, Status: entity.RetailerStatusRejected, RejectionReason: &reason}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "pending is not a decision",
			body:       `{"status":"pending"}`,
			setup:      func(m *mockUsecase.MockRetailerUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "unknown retailer",
			body: `{"status":"approved"}`,
			setup: func(m *mockUsecase.MockRetailerUsecase) {
				m.EXPECT().Review(mock.Anything, admin.ID, retailerID, mock.Anything).
					Return(nil, domainerrors.ErrRetailerNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "RETAILER_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, retailerUC, _ := newAdminHandler(t)
			tt.setup(retailerUC)

			c, rec := newRequest(http.MethodPost, "/api/admin/retailers/"+retailerID.String()+"/review", tt.body, admin)
			withParams(c, []string{"id"}, []string{retailerID.String()})

			require.NoError(t, h.ReviewRetailer(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode(t, rec).Code)
			}
		})
	}
}

func TestAdminHandler_ListRetailers_StatusFilter(t *testing.T) {
	h, retailerUC, _ := newAdminHandler(t)
	pending := entity.RetailerStatusPending
	retailerUC.EXPECT().List(mock.Anything, &pending, 0, 0).
		Return(&usecase.RetailerPage{Items: []*entity.Retailer{}, Page: 1, PageSize: 20}, nil)

	c, rec := newRequest(http.MethodGet, "/api/admin/retailers?status=pending", "", newIdentity())

	require.NoError(t, h.ListRetailers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"pagination":{"page":1,"pageSize":20,"total":0}}`, string(decode(t, rec).Data))
}

func TestAdminHandler_ListRetailers_UnknownStatus(t *testing.T) {
	h, _, _ := newAdminHandler(t)

	c, rec := newRequest(http.MethodGet, "/api/admin/retailers?status=banned", "", newIdentity())

	require.NoError(t, h.ListRetailers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_STATUS", decode(t, rec).Code)
}

func TestAdminHandler_ReviewDeal_Approve(t *testing.T) {
	h, _, dealUC := newAdminHandler(t)
	admin := newIdentity()
	dealID := uuid.New()
	dealUC.EXPECT().Review(mock.Anything, admin.ID, dealID, &usecase.ReviewInput{Approve: true}).
		Return(&entity.Deal{ID: dealID, Status: entity.DealStatusApproved, IsActive: true}, nil)

	c, rec := newRequest(http.MethodPost, "/api/admin/deals/"+dealID.String()+"/review", `{"status":"approved"}`, admin)
	withParams(c, []string{"id"}, []string{dealID.String()})

	require.NoError(t, h.ReviewDeal(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"displayState":"Active"`)
}
