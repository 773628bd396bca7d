package qrcode

import (
	"net/url"
	"strings"

	"dealsmarket/config"
	"dealsmarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080"
	dealPathPrefix = "/deals/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "M", defaultBaseURL
	if qr := cfg.QRCode; qr != nil {
		if qr.Size > 0 {
			size = qr.Size
		}
		if qr.ErrorCorrectionLevel != "" {
			level = qr.ErrorCorrectionLevel
		}
		if qr.BaseURL != "" {
			baseURL = qr.BaseURL
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateDealQR encodes the public deal URL as a PNG.
func (s *qrcodeService) GenerateDealQR(dealID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.dealURL(dealID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseDealQR extracts the deal ID from a scanned deal URL.
func (s *qrcodeService) ParseDealQR(content string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(content))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code content")
	}

	rawID, ok := strings.CutPrefix(parsed.Path, dealPathPrefix)
	if !ok || rawID == "" || strings.Contains(rawID, "/") {
		return uuid.Nil, errors.Errorf("QR code does not point at a deal: %s", content)
	}

	dealID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse deal ID")
	}

	return dealID, nil
}

func (s *qrcodeService) dealURL(dealID uuid.UUID) string {
	return s.baseURL + dealPathPrefix + dealID.String()
}
