package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WatchlistItemModel mirrors the 'watchlist_items' table. One row per (user, deal).
type WatchlistItemModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_user_deal"`
	DealID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_user_deal"`
	Deal      *DealModel `gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WatchlistItemModel) TableName() string {
	return "watchlist_items"
}

func (m *WatchlistItemModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

// PriceAlertModel mirrors the 'price_alerts' table. One row per (user, deal).
type PriceAlertModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_price_alert_user_deal"`
	DealID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_price_alert_user_deal"`
	Deal        *DealModel `gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE"`
	TargetPrice float64    `gorm:"not null"`
	Notified    bool       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PriceAlertModel) TableName() string {
	return "price_alerts"
}

func (m *PriceAlertModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

// CategoryModel mirrors the 'categories' reference table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	IsActive  bool      `gorm:"not null"`
	SortOrder int       `gorm:"not null"`
	// DealCount is computed by listing queries.
	DealCount int `gorm:"-:migration;->"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

func (m *CategoryModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
