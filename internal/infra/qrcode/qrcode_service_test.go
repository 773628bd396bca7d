package qrcode

import (
	"testing"

	"dealsmarket/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) *qrcodeService {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BaseURL:              "https://deals.example.com/",
	}})

	return svc.(*qrcodeService)
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, defaultBaseURL, svc.baseURL)
}

func TestQRCodeService_GenerateDealQR(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "invalid"} {
		t.Run(level, func(t *testing.T) {
			svc := newTestService(256, level)

			qrBytes, err := svc.GenerateDealQR(uuid.New())
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_DealURL(t *testing.T) {
	svc := newTestService(128, "M")
	dealID := uuid.New()

	assert.Equal(t, "https://deals.example.com/deals/"+dealID.String(), svc.dealURL(dealID))
}

func TestQRCodeService_ParseDealQR(t *testing.T) {
	svc := newTestService(128, "M")
	dealID := uuid.New()

	tests := []struct {
		name    string
		content string
		want    uuid.UUID
		wantErr bool
	}{
		{name: "deal url", content: svc.dealURL(dealID), want: dealID},
		{name: "surrounding whitespace", content: "  " + svc.dealURL(dealID) + "\n", want: dealID},
		{name: "other path", content: "https://deals.example.com/retailers/" + dealID.String(), wantErr: true},
		{name: "nested path", content: "https://deals.example.com/deals/" + dealID.String() + "/edit", wantErr: true},
		{name: "bad id", content: "https://deals.example.com/deals/not-a-uuid", wantErr: true},
		{name: "empty", content: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseDealQR(tt.content)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
