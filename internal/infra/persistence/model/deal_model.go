package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DealModel mirrors the 'deals' table.
type DealModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RetailerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID      *uuid.UUID `gorm:"type:uuid;index"`
	Title           string     `gorm:"type:varchar(200);not null"`
	Description     string     `gorm:"type:text"`
	Status          string     `gorm:"type:varchar(20);not null;index"`
	IsActive        bool       `gorm:"not null"`
	OriginalPrice   float64    `gorm:"not null"`
	DiscountedPrice float64    `gorm:"not null"`
	Quantity        int        `gorm:"not null"`
	DealURL         string     `gorm:"type:varchar(1000)"`
	ImageURL        string     `gorm:"type:varchar(1000)"`
	StartDate       time.Time  `gorm:"not null"`
	EndDate         *time.Time `gorm:"index"`
	RejectionReason *string    `gorm:"type:text"`
	ViewCount       int64      `gorm:"not null"`
	ClickCount      int64      `gorm:"not null"`
	CreatedAt       time.Time  `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DealModel) TableName() string {
	return "deals"
}

func (m *DealModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
