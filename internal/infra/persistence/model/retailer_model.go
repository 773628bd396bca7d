package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RetailerModel mirrors the 'retailers' table, with the application form flattened into columns.
type RetailerModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name            string    `gorm:"type:varchar(200);not null"`
	Slug            string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	IsActive        bool      `gorm:"not null"`
	Commission      float64   `gorm:"not null"`
	WebsiteURL      string    `gorm:"type:varchar(500)"`
	AffiliateID     *string   `gorm:"type:varchar(100)"`
	RejectionReason *string   `gorm:"type:text"`
	ReviewedAt      *time.Time

	LegalName          string `gorm:"type:varchar(200)"`
	BusinessType       string `gorm:"type:varchar(100)"`
	RegistrationNumber string `gorm:"type:varchar(100)"`
	Description        string `gorm:"type:text"`
	LogoURL            string `gorm:"type:varchar(500)"`

	ContactName  string `gorm:"type:varchar(200)"`
	ContactEmail string `gorm:"type:varchar(255)"`
	ContactPhone string `gorm:"type:varchar(50)"`
	Address      string `gorm:"type:varchar(500)"`
	City         string `gorm:"type:varchar(100)"`
	Country      string `gorm:"type:varchar(100)"`

	ProductCategories datatypes.JSONSlice[string]
	AverageDiscount   float64
	SKUCount          int
	MonthlyDeals      int

	SalesChannels   datatypes.JSONSlice[string]
	ReturnPolicyURL string `gorm:"type:varchar(500)"`
	ShippingRegions string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RetailerModel) TableName() string {
	return "retailers"
}

func (m *RetailerModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
