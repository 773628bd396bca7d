package access

import (
	"net/http"
	"net/url"
	"testing"

	"dealsmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retailerAccess(status entity.RetailerStatus) *entity.AccessProfile {
	retailerID := uuid.New()

	return &entity.AccessProfile{
		UserID:         uuid.New(),
		Role:           entity.RoleRetailer,
		RetailerID:     &retailerID,
		RetailerStatus: status,
	}
}

func consumerAccess() *entity.AccessProfile {
	return &entity.AccessProfile{UserID: uuid.New(), Role: entity.RoleConsumer}
}

func TestClassifyRoute(t *testing.T) {
	tests := []struct {
		path string
		want RouteClass
	}{
		{"/", RoutePublic},
		{"/deals/123", RoutePublic},
		{"/auth", RouteAuth},
		{"/auth/login", RouteAuth},
		{"/authors", RoutePublic},
		{"/retailer", RouteRetailer},
		{"/retailer/dashboard/deals", RouteRetailer},
		{"/retailers", RoutePublic},
		{"/watchlist", RouteConsumerProtected},
		{"/alerts/abc", RouteConsumerProtected},
		{"/profile", RouteConsumerProtected},
		{"/profiles", RoutePublic},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRoute(tt.path))
		})
	}
}

func TestEvaluateEdge_SkipsNonNavigational(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		d := EvaluateEdge(EdgeInput{Method: method, Path: "/retailer/dashboard"})
		assert.True(t, d.Allowed, method)
	}
}

func TestEvaluateEdge_UnauthenticatedProtectedRoutesGoToLogin(t *testing.T) {
	paths := []string{
		"/retailer",
		"/retailer/dashboard",
		"/retailer/dashboard/deals/42",
		"/retailer/apply",
		"/watchlist",
		"/alerts",
		"/profile",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			d := EvaluateEdge(EdgeInput{Method: http.MethodGet, Path: path})
			require.False(t, d.Allowed)

			target, err := url.Parse(d.RedirectTo)
			require.NoError(t, err)
			assert.Equal(t, PathLogin, target.Path)
			assert.Equal(t, path, target.Query().Get("returnUrl"))
		})
	}
}

func TestEvaluateEdge_LoginReturnKeepsQuery(t *testing.T) {
	d := EvaluateEdge(EdgeInput{
		Method:   http.MethodGet,
		Path:     "/retailer/dashboard/deals",
		ReturnTo: "/retailer/dashboard/deals?status=pending",
	})
	require.False(t, d.Allowed)

	target, err := url.Parse(d.RedirectTo)
	require.NoError(t, err)
	assert.Equal(t, "/retailer/dashboard/deals?status=pending", target.Query().Get("returnUrl"))
}

func TestEvaluateEdge_SignedInOnLanding(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		access *entity.AccessProfile
		want   Decision
	}{
		{"approved retailer home", "/", retailerAccess(entity.RetailerStatusApproved), Redirect(PathRetailerDash, "")},
		{"pending retailer home", "/", retailerAccess(entity.RetailerStatusPending), Redirect(PathRetailerPending, "")},
		{"rejected retailer login", "/auth/login", retailerAccess(entity.RetailerStatusRejected), Redirect(PathRetailerPending, "")},
		{"unlinked retailer", "/", &entity.AccessProfile{Role: entity.RoleRetailer}, Redirect(PathRetailerPending, "")},
		{"consumer on auth", "/auth/signup", consumerAccess(), Redirect(PathHome, "")},
		{"consumer on home", "/", consumerAccess(), Allow()},
		{"admin on auth", "/auth/login", &entity.AccessProfile{Role: entity.RoleAdmin}, Allow()},
		{"lookup failed on auth", "/auth/login", nil, Allow()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := EvaluateEdge(EdgeInput{Method: http.MethodGet, Path: tt.path, Authenticated: true, Access: tt.access})
			assert.Equal(t, tt.want.Allowed, d.Allowed)
			assert.Equal(t, tt.want.RedirectTo, d.RedirectTo)
		})
	}
}

func TestEvaluateEdge_RetailerSubtree(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		access *entity.AccessProfile
		want   Decision
	}{
		// Status is not checked here; pending retailers pass and the page guard redirects them.
		{"pending retailer dashboard", "/retailer/dashboard", retailerAccess(entity.RetailerStatusPending), Allow()},
		{"approved retailer dashboard", "/retailer/dashboard/deals", retailerAccess(entity.RetailerStatusApproved), Allow()},
		{"consumer dashboard", "/retailer/dashboard", consumerAccess(), Redirect(PathHomeUnauthorized, "")},
		{"consumer apply", "/retailer/apply", consumerAccess(), Allow()},
		{"admin apply", "/retailer/apply", &entity.AccessProfile{Role: entity.RoleAdmin}, Redirect(PathHomeUnauthorized, "")},
		{"lookup failed", "/retailer/dashboard", nil, Redirect(PathHomeUnauthorized, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := EvaluateEdge(EdgeInput{Method: http.MethodGet, Path: tt.path, Authenticated: true, Access: tt.access})
			assert.Equal(t, tt.want.Allowed, d.Allowed)
			assert.Equal(t, tt.want.RedirectTo, d.RedirectTo)
		})
	}
}

func TestEvaluateEdge_ConsumerProtected(t *testing.T) {
	d := EvaluateEdge(EdgeInput{Method: http.MethodGet, Path: "/watchlist", Authenticated: true, Access: retailerAccess(entity.RetailerStatusApproved)})
	assert.Equal(t, PathRetailerDash, d.RedirectTo)

	d = EvaluateEdge(EdgeInput{Method: http.MethodGet, Path: "/alerts", Authenticated: true, Access: consumerAccess()})
	assert.True(t, d.Allowed)

	d = EvaluateEdge(EdgeInput{Method: http.MethodGet, Path: "/profile", Authenticated: true})
	assert.False(t, d.Allowed)
	assert.Equal(t, PathHome, d.RedirectTo)
}

func TestNeedsProfile(t *testing.T) {
	assert.False(t, NeedsProfile(http.MethodGet, "/retailer/dashboard", false))
	assert.False(t, NeedsProfile(http.MethodPost, "/retailer/dashboard", true))
	assert.False(t, NeedsProfile(http.MethodGet, "/deals/1", true))
	assert.True(t, NeedsProfile(http.MethodGet, "/", true))
	assert.True(t, NeedsProfile(http.MethodGet, "/auth/login", true))
	assert.True(t, NeedsProfile(http.MethodGet, "/watchlist", true))
}

func TestLoginWithReturn(t *testing.T) {
	assert.Equal(t, "/auth/login?returnUrl=%2Fretailer%2Fdashboard", LoginWithReturn("/retailer/dashboard"))
}
