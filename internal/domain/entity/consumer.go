package entity

import (
	"time"

	"github.com/google/uuid"
)

// WatchlistItem marks a deal saved by a consumer. Unique per (UserID, DealID).
type WatchlistItem struct {
	UserID    uuid.UUID
	DealID    uuid.UUID
	Deal      *Deal // Populated on listing reads.
	CreatedAt time.Time
}

// PriceAlert asks to be notified when a deal reaches TargetPrice. Unique per (UserID, DealID).
type PriceAlert struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DealID      uuid.UUID
	TargetPrice float64
	Notified    bool
	Deal        *Deal // Populated on listing reads.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category is reference data used to browse deals.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"isActive"`
	Order     int       `json:"order"`
	DealCount int       `json:"dealCount"`
}
