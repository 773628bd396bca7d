package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel mirrors the 'user_profiles' table. ID equals the identity ID.
type UserProfileModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email      string     `gorm:"type:varchar(255);not null"`
	Name       string     `gorm:"type:varchar(100)"`
	Role       string     `gorm:"type:varchar(20);not null;index"`
	RetailerID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
