package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for deal share QR code generation and parsing
type QRCodeService interface {
	// GenerateDealQR generates a PNG QR code pointing at a deal page
	GenerateDealQR(dealID uuid.UUID) ([]byte, error)

	// ParseDealQR parses QR code content and returns the deal ID
	ParseDealQR(content string) (uuid.UUID, error)
}
