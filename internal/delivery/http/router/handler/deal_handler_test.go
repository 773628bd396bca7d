package handler

import (
	"net/http"
	"testing"

	"dealsmarket/internal/domain/entity"
	domainerrors "dealsmarket/internal/domain/errors"
	"dealsmarket/internal/domain/repository"
	mockUsecase "dealsmarket/internal/mocks/usecase"
	"dealsmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDealHandler(t *testing.T) (*DealHandler, *mockUsecase.MockDealUsecase) {
	dealUC := mockUsecase.NewMockDealUsecase(t)

	return NewDealHandler(DealHandlerParams{DealUC: dealUC, Logger: testLogger()}), dealUC
}

const validDealBody = `{"title":"Headphones","originalPrice":50,"discountedPrice":60,"quantity":5,"dealUrl":"https://shop.example.com/p/1"}`

func TestDealHandler_Create_RejectsDiscountAboveOriginal(t *testing.T) {
	h, dealUC := newDealHandler(t)
	identity := newIdentity()

	dealUC.EXPECT().Create(mock.Anything, identity.ID, mock.MatchedBy(func(in *usecase.DealInput) bool {
		return in.OriginalPrice == 50 && in.DiscountedPrice == 60
	})).Return(nil, domainerrors.ErrInvalidPrice)

	c, rec := newRequest(http.MethodPost, "/api/retailer/deals", validDealBody, identity)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "INVALID_PRICE", body.Code)
	assert.Contains(t, rec.Body.String(), "Discounted price must be less than original price")
}

func TestDealHandler_Create_RequiresIdentity(t *testing.T) {
	h, _ := newDealHandler(t)

	c, rec := newRequest(http.MethodPost, "/api/retailer/deals", validDealBody, nil)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDealHandler_Pause(t *testing.T) {
	identity := newIdentity()
	dealID := uuid.New()

	tests := []struct {
		name       string
		deal       *entity.Deal
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "approved deal is paused",
			deal:       &entity.Deal{ID: dealID, Status: entity.DealStatusApproved, IsActive: false},
			wantStatus: http.StatusOK,
			wantBody:   `"displayState":"Paused"`,
		},
		{
			name:       "pending deal is refused",
			err:        domainerrors.ErrDealNotApproved,
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"DEAL_NOT_APPROVED"`,
		},
		{
			name:       "store failure is generic",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL_ERROR"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dealUC := newDealHandler(t)
			dealUC.EXPECT().Pause(mock.Anything, identity.ID, dealID).Return(tt.deal, tt.err)

			c, rec := newRequest(http.MethodPost, "/api/deals/"+dealID.String()+"/pause", "", identity)
			withParams(c, []string{"id"}, []string{dealID.String()})

			require.NoError(t, h.Pause(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestDealHandler_Delete_NotOwner(t *testing.T) {
	h, dealUC := newDealHandler(t)
	identity := newIdentity()
	dealID := uuid.New()
	dealUC.EXPECT().Delete(mock.Anything, identity.ID, dealID).
		Return(domainerrors.ErrNotOwner.WrapMessage("deal belongs to another retailer"))

	c, rec := newRequest(http.MethodDelete, "/api/retailer/deals/"+dealID.String(), "", identity)
	withParams(c, []string{"id"}, []string{dealID.String()})

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_OWNER", decode(t, rec).Code)
}

func TestDealHandler_InvalidID(t *testing.T) {
	h, _ := newDealHandler(t)

	c, rec := newRequest(http.MethodGet, "/api/deals/nope", "", nil)
	withParams(c, []string{"id"}, []string{"nope"})

	require.NoError(t, h.GetPublic(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode(t, rec).Code)
}

func TestDealHandler_ListPublic_ParsesFilters(t *testing.T) {
	h, dealUC := newDealHandler(t)

	dealUC.EXPECT().ListPublic(mock.Anything, &usecase.DealListInput{
		CategorySlug: "electronics",
		RetailerSlug: "acme",
		Query:        "phone",
		Sort:         repository.DealSortDiscount,
		Page:         2,
		PageSize:     10,
	}).Return(&usecase.DealPage{Items: []*entity.Deal{}, Total: 11, Page: 2, PageSize: 10})

	c, rec := newRequest(http.MethodGet,
		"/api/deals?category=electronics&retailer=acme&q=+phone+&sort=discount&page=2&pageSize=10", "", nil)

	require.NoError(t, h.ListPublic(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"pagination":{"page":2,"pageSize":10,"total":11}}`, string(decode(t, rec).Data))
}

func TestDealHandler_ListOwn_RejectsUnknownStatus(t *testing.T) {
	h, _ := newDealHandler(t)

	c, rec := newRequest(http.MethodGet, "/api/retailer/deals?status=archived", "", newIdentity())

	require.NoError(t, h.ListOwn(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDealHandler_TrackClickAndQR(t *testing.T) {
	h, dealUC := newDealHandler(t)
	dealID := uuid.New()

	dealUC.EXPECT().TrackClick(mock.Anything, dealID).Return(&entity.Deal{ID: dealID, DealURL: "https://shop.example.com/p/1"}, nil)
	dealUC.EXPECT().ShareQR(mock.Anything, dealID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	c, rec := newRequest(http.MethodPost, "/api/deals/"+dealID.String()+"/click", "", nil)
	withParams(c, []string{"id"}, []string{dealID.String()})
	require.NoError(t, h.TrackClick(c))
	assert.JSONEq(t, `{"dealUrl":"https://shop.example.com/p/1"}`, string(decode(t, rec).Data))

	c, rec = newRequest(http.MethodGet, "/api/deals/"+dealID.String()+"/qr", "", nil)
	withParams(c, []string{"id"}, []string{dealID.String()})
	require.NoError(t, h.ShareQR(c))
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}
