package entity

import "github.com/google/uuid"

// AccessProfile is the resolved authorization view of a user used by every gate.
type AccessProfile struct {
	UserID          uuid.UUID
	Role            Role
	RetailerID      *uuid.UUID
	RetailerStatus  RetailerStatus // Empty when no retailer row is linked.
	RejectionReason *string
}

// HasRetailer reports whether a retailer row was resolved for the profile.
func (a *AccessProfile) HasRetailer() bool {
	return a != nil && a.RetailerID != nil && a.RetailerStatus != ""
}
