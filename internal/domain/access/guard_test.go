package access

import (
	"testing"

	"dealsmarket/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestEvaluatePage_DecisionTable(t *testing.T) {
	tests := []struct {
		name   string
		page   Page
		in     GuardInput
		allow  bool
		target string
	}{
		{"no user", PageDashboard, GuardInput{}, false, PathLogin},
		{"lookup failed", PageDashboard, GuardInput{Authenticated: true}, false, PathLogin},
		{"consumer on dashboard", PageDashboard, GuardInput{Authenticated: true, Access: consumerAccess()}, false, PathLoginUnauthorized},
		{"admin on pending", PagePending, GuardInput{Authenticated: true, Access: &entity.AccessProfile{Role: entity.RoleAdmin}}, false, PathLoginUnauthorized},
		{"consumer on apply", PageApply, GuardInput{Authenticated: true, Access: consumerAccess()}, true, ""},
		{"retailer without application on apply", PageApply, GuardInput{Authenticated: true, Access: &entity.AccessProfile{Role: entity.RoleRetailer}}, true, ""},
		{"retailer without application on dashboard", PageDashboard, GuardInput{Authenticated: true, Access: &entity.AccessProfile{Role: entity.RoleRetailer}}, false, PathRetailerApply},
		{"pending on dashboard", PageDashboard, GuardInput{Authenticated: true, Access: retailerAccess(entity.RetailerStatusPending)}, false, PathRetailerPending},
		{"rejected on dashboard", PageDashboard, GuardInput{Authenticated: true, Access: retailerAccess(entity.RetailerStatusRejected)}, false, PathRetailerRejected},
		{"approved on dashboard", PageDashboard, GuardInput{Authenticated: true, Access: retailerAccess(entity.RetailerStatusApproved)}, true, ""},
		{"pending on apply", PageApply, GuardInput{Authenticated: true, Access: retailerAccess(entity.RetailerStatusPending)}, false, PathRetailerPending},
		{"approved on pending", PagePending, GuardInput{Authenticated: true, Access: retailerAccess(entity.RetailerStatusApproved)}, false, PathRetailerDash},
		{"rejected on pending", PagePending, GuardInput{Authenticated: true, Access: retailerAccess(entity.RetailerStatusRejected)}, false, PathRetailerRejected},
		{"pending on pending", PagePending, GuardInput{Authenticated: true, Access: retailerAccess(entity.RetailerStatusPending)}, true, ""},
		{"approved on rejected", PageRejected, GuardInput{Authenticated: true, Access: retailerAccess(entity.RetailerStatusApproved)}, false, PathRetailerDash},
		{"pending on rejected", PageRejected, GuardInput{Authenticated: true, Access: retailerAccess(entity.RetailerStatusPending)}, false, PathRetailerPending},
		{"rejected on rejected", PageRejected, GuardInput{Authenticated: true, Access: retailerAccess(entity.RetailerStatusRejected)}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := EvaluatePage(tt.page, tt.in)
			assert.Equal(t, tt.allow, d.Allowed)
			assert.Equal(t, tt.target, d.RedirectTo)
		})
	}
}

func TestEvaluatePage_DashboardOnlyForApproved(t *testing.T) {
	for _, status := range []entity.RetailerStatus{entity.RetailerStatusPending, entity.RetailerStatusRejected} {
		d := EvaluatePage(PageDashboard, GuardInput{Authenticated: true, Access: retailerAccess(status)})
		assert.False(t, d.Allowed)
		assert.Equal(t, StatusLanding(status), d.RedirectTo)
	}
}
