package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeal_DisplayState(t *testing.T) {
	tests := []struct {
		status   DealStatus
		isActive bool
		want     DisplayState
	}{
		{DealStatusApproved, true, DisplayActive},
		{DealStatusApproved, false, DisplayPaused},
		{DealStatusPending, true, DisplayPending},
		{DealStatusPending, false, DisplayPending},
		{DealStatusRejected, true, DisplayRejected},
		{DealStatusRejected, false, DisplayRejected},
	}

	for _, tt := range tests {
		t.Run(string(tt.status)+"/"+string(tt.want), func(t *testing.T) {
			deal := &Deal{Status: tt.status, IsActive: tt.isActive}
			assert.Equal(t, tt.want, deal.DisplayState())
		})
	}
}

func TestDeal_IsVisibleAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		deal Deal
		want bool
	}{
		{"approved active open-ended", Deal{Status: DealStatusApproved, IsActive: true}, true},
		{"approved active not yet ended", Deal{Status: DealStatusApproved, IsActive: true, EndDate: &future}, true},
		{"approved active ended", Deal{Status: DealStatusApproved, IsActive: true, EndDate: &past}, false},
		{"ends exactly now", Deal{Status: DealStatusApproved, IsActive: true, EndDate: &now}, false},
		{"paused", Deal{Status: DealStatusApproved, IsActive: false}, false},
		{"pending", Deal{Status: DealStatusPending, IsActive: true}, false},
		{"rejected", Deal{Status: DealStatusRejected, IsActive: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.deal.IsVisibleAt(now))
		})
	}
}

func TestDeal_DiscountPercent(t *testing.T) {
	assert.Equal(t, 25, (&Deal{OriginalPrice: 80, DiscountedPrice: 60}).DiscountPercent())
	assert.Equal(t, 50, (&Deal{OriginalPrice: 99.99, DiscountedPrice: 49.99}).DiscountPercent())
	assert.Equal(t, 0, (&Deal{}).DiscountPercent())
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleRetailer, ParseRole("retailer"))
	assert.Equal(t, RoleConsumer, ParseRole("superuser"))
	assert.Equal(t, RoleConsumer, ParseRole(""))

	assert.True(t, RoleConsumer.CanOwnRetailer())
	assert.True(t, RoleRetailer.CanOwnRetailer())
	assert.False(t, RoleAdmin.CanOwnRetailer())
}

func TestAccessProfile_HasRetailer(t *testing.T) {
	retailerID := uuid.New()

	var nilProfile *AccessProfile
	assert.False(t, nilProfile.HasRetailer())
	assert.False(t, (&AccessProfile{Role: RoleRetailer}).HasRetailer())
	assert.False(t, (&AccessProfile{RetailerID: &retailerID}).HasRetailer())
	assert.True(t, (&AccessProfile{RetailerID: &retailerID, RetailerStatus: RetailerStatusPending}).HasRetailer())
}

func TestRefreshToken_IsExpired(t *testing.T) {
	now := time.Now()

	assert.True(t, (&RefreshToken{ExpiresAt: now.Add(-time.Second)}).IsExpired(now))
	assert.False(t, (&RefreshToken{ExpiresAt: now.Add(time.Minute)}).IsExpired(now))
}
