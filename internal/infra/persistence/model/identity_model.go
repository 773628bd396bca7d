package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdentityModel mirrors the 'identities' table owned by the identity provider.
type IdentityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

func (m *IdentityModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

// CredentialModel mirrors the 'credentials' table holding email/password logins.
type CredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdentityID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

func (m *CredentialModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. Only the token hash is stored.
type RefreshTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdentityID uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

func (m *RefreshTokenModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
