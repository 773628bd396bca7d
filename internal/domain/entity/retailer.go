package entity

import (
	"time"

	"github.com/google/uuid"
)

// RetailerStatus is the approval stage of a retailer account.
type RetailerStatus string

const (
	RetailerStatusPending  RetailerStatus = "pending"
	RetailerStatusApproved RetailerStatus = "approved"
	RetailerStatusRejected RetailerStatus = "rejected"
)

// IsValid checks if the status is a known value.
func (s RetailerStatus) IsValid() bool {
	switch s {
	case RetailerStatusPending, RetailerStatusApproved, RetailerStatusRejected:
		return true
	default:
		return false
	}
}

// Retailer is a merchant account capable of listing deals once approved.
// Status is the sole authority for dashboard access.
type Retailer struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Slug            string
	Status          RetailerStatus
	IsActive        bool
	Commission      float64
	WebsiteURL      string
	AffiliateID     *string
	RejectionReason *string
	Application     RetailerApplication
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RetailerApplication holds the fields collected by the multi-step application form.
type RetailerApplication struct {
	// Business identity
	LegalName          string
	BusinessType       string
	RegistrationNumber string
	Description        string
	LogoURL            string

	// Contact
	ContactName  string
	ContactEmail string
	ContactPhone string
	Address      string
	City         string
	Country      string

	// Inventory profile
	ProductCategories []string
	AverageDiscount   float64
	SKUCount          int
	MonthlyDeals      int

	// Operational controls
	SalesChannels   []string
	ReturnPolicyURL string
	ShippingRegions string
}
