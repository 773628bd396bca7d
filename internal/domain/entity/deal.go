package entity

import (
	"time"

	"github.com/google/uuid"
)

// DealStatus is the review stage of a deal listing.
type DealStatus string

const (
	DealStatusPending  DealStatus = "pending"
	DealStatusApproved DealStatus = "approved"
	DealStatusRejected DealStatus = "rejected"
)

// IsValid checks if the status is a known value.
func (s DealStatus) IsValid() bool {
	switch s {
	case DealStatusPending, DealStatusApproved, DealStatusRejected:
		return true
	default:
		return false
	}
}

// DisplayState is how a deal is presented to its retailer, derived from status and the active flag.
type DisplayState string

const (
	DisplayActive   DisplayState = "Active"
	DisplayPaused   DisplayState = "Paused"
	DisplayPending  DisplayState = "Pending"
	DisplayRejected DisplayState = "Rejected"
)

// Deal is a discounted listing owned by a retailer.
type Deal struct {
	ID              uuid.UUID
	RetailerID      uuid.UUID
	CategoryID      *uuid.UUID
	Title           string
	Description     string
	Status          DealStatus
	IsActive        bool
	OriginalPrice   float64
	DiscountedPrice float64
	Quantity        int
	DealURL         string
	ImageURL        string
	StartDate       time.Time
	EndDate         *time.Time
	RejectionReason *string
	ViewCount       int64
	ClickCount      int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DisplayState derives the retailer-facing state from {status, isActive}.
func (d *Deal) DisplayState() DisplayState {
	switch d.Status {
	case DealStatusApproved:
		if d.IsActive {
			return DisplayActive
		}

		return DisplayPaused
	case DealStatusRejected:
		return DisplayRejected
	default:
		return DisplayPending
	}
}

// IsVisibleAt reports whether consumers may see the deal at the given instant.
func (d *Deal) IsVisibleAt(now time.Time) bool {
	if d.Status != DealStatusApproved || !d.IsActive {
		return false
	}

	return d.EndDate == nil || d.EndDate.After(now)
}

// DiscountPercent returns the rounded-down discount relative to the original price.
func (d *Deal) DiscountPercent() int {
	if d.OriginalPrice <= 0 {
		return 0
	}

	return int((d.OriginalPrice - d.DiscountedPrice) / d.OriginalPrice * 100)
}
