package entity

// Role is the coarse account type that decides which route subtree is reachable.
type Role string

const (
	// RoleConsumer is assigned at signup.
	RoleConsumer Role = "consumer"
	// RoleRetailer is set when a retailer application is linked to the account.
	RoleRetailer Role = "retailer"
	// RoleAdmin reviews retailers and deals. It is only ever granted out of band.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleConsumer, RoleRetailer, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanOwnRetailer reports whether accounts with this role may be linked to a retailer row.
// Admins never apply, so a missing retailer row is not an inconsistency for them.
func (r Role) CanOwnRetailer() bool {
	return r == RoleConsumer || r == RoleRetailer
}

// ParseRole maps a stored role string to a Role. Unknown values fall back to RoleConsumer,
// the least privileged role.
func ParseRole(s string) Role {
	if role := Role(s); role.IsValid() {
		return role
	}

	return RoleConsumer
}
