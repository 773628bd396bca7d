package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "dealsmarket/internal/delivery/context"
	domainerrors "dealsmarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-123")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"id":"1"},"meta":{"request_id":"req-123"}}`, rec.Body.String())
}

func TestSuccess_PagedUsesCamelCaseMeta(t *testing.T) {
	c, rec := newContext()

	page := Paged[string]{
		Items:      []string{"a", "b"},
		Pagination: PageMeta{Page: 2, PageSize: 20, Total: 42},
	}
	require.NoError(t, Success(c, http.StatusOK, page))

	assert.JSONEq(t, `{
		"success": true,
		"data": {"items": ["a", "b"], "pagination": {"page": 2, "pageSize": 20, "total": 42}},
		"meta": {"request_id": "req-123"}
	}`, rec.Body.String())
}

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:       "wrapped domain error",
			err:        domainerrors.ErrDealNotFound.WrapMessage("lookup"),
			wantStatus: http.StatusNotFound,
			wantCode:   "DEAL_NOT_FOUND",
		},
		{
			name:        "validation details are kept",
			err:         domainerrors.ErrValidationFailed.WithDetails("title is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "title is required",
		},
		{
			name:       "forbidden hides details",
			err:        domainerrors.ErrNotOwner.WithDetails("retailer mismatch"),
			wantStatus: http.StatusForbidden,
			wantCode:   "NOT_OWNER",
		},
		{
			name:       "store error is generic",
			err:        errors.New(`pq: relation "deals" does not exist`),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, HandleAppError(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-123", body.Meta.RequestID)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}
