// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is what the identity provider knows about an authenticated person.
// Role and retailer linkage are not part of it; they live on the UserProfile.
type Identity struct {
	ID        uuid.UUID // Identifier shared with the matching UserProfile.
	Email     string    // Login email.
	Name      string    // Display name given at signup.
	CreatedAt time.Time // Timestamp of when the identity was created.
}

// UserProfile is the application-side account row. It is created at signup with RoleConsumer
// and only the application-approval flow or an admin changes Role or RetailerID.
type UserProfile struct {
	ID         uuid.UUID  // Same value as Identity.ID.
	Email      string     // Copied from the identity at signup.
	Name       string     // Display name.
	Role       Role       // consumer, retailer or admin.
	RetailerID *uuid.UUID // Linked retailer row; nil until an application is linked.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsRetailer reports whether the profile carries the retailer role.
func (p *UserProfile) IsRetailer() bool {
	return p != nil && p.Role == RoleRetailer
}

// HasLinkedRetailer reports whether the profile points at a retailer row.
func (p *UserProfile) HasLinkedRetailer() bool {
	return p != nil && p.RetailerID != nil && *p.RetailerID != uuid.Nil
}
