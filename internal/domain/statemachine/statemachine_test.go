package statemachine

import (
	"testing"

	"dealsmarket/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionRetailer(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.RetailerStatus
		to      entity.RetailerStatus
		actor   Actor
		wantErr bool
	}{
		{"admin approves pending", entity.RetailerStatusPending, entity.RetailerStatusApproved, ActorAdmin, false},
		{"admin rejects pending", entity.RetailerStatusPending, entity.RetailerStatusRejected, ActorAdmin, false},
		{"admin reconsiders rejected", entity.RetailerStatusRejected, entity.RetailerStatusApproved, ActorAdmin, false},
		{"retailer cannot self approve", entity.RetailerStatusPending, entity.RetailerStatusApproved, ActorRetailer, true},
		{"approved cannot go back to pending", entity.RetailerStatusApproved, entity.RetailerStatusPending, ActorAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransitionRetailer(tt.from, tt.to, tt.actor)
			if tt.wantErr {
				require.Error(t, err)
				var te *TransitionError
				assert.ErrorAs(t, err, &te)
				assert.Equal(t, "retailer", te.Entity)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCanTransitionDeal(t *testing.T) {
	assert.NoError(t, CanTransitionDeal(entity.DealStatusPending, entity.DealStatusApproved, ActorAdmin))
	assert.NoError(t, CanTransitionDeal(entity.DealStatusApproved, entity.DealStatusPending, ActorRetailer))
	assert.NoError(t, CanTransitionDeal(entity.DealStatusRejected, entity.DealStatusPending, ActorRetailer))
	assert.Error(t, CanTransitionDeal(entity.DealStatusPending, entity.DealStatusApproved, ActorRetailer))
	assert.Error(t, CanTransitionDeal(entity.DealStatusApproved, entity.DealStatusApproved, ActorAdmin))
}

func TestStatusAfterEdit_AlwaysPending(t *testing.T) {
	for _, s := range []entity.DealStatus{entity.DealStatusPending, entity.DealStatusApproved, entity.DealStatusRejected} {
		assert.Equal(t, entity.DealStatusPending, StatusAfterEdit(s))
		assert.NoError(t, CanTransitionDeal(s, StatusAfterEdit(s), ActorRetailer))
	}
}

func TestCanToggleActive(t *testing.T) {
	assert.True(t, CanToggleActive(entity.DealStatusApproved))
	assert.False(t, CanToggleActive(entity.DealStatusPending))
	assert.False(t, CanToggleActive(entity.DealStatusRejected))
}

func TestTransitionError_Message(t *testing.T) {
	err := CanTransitionDeal(entity.DealStatusApproved, entity.DealStatusApproved, ActorAdmin)
	assert.Contains(t, err.Error(), "valid targets: rejected, pending")
}
