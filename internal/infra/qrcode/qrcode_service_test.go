package qrcode

import (
	"testing"

	"marketplace/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *qrcodeService {
	t.Helper()
	svc, err := NewQRCodeService(&config.QRCodeConfig{
		Size:                 256,
		ErrorCorrectionLevel: "M",
		BaseURL:              "https://deals.example.com/app/",
	})
	require.NoError(t, err)

	return svc.(*qrcodeService)
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc, err := NewQRCodeService(nil)
	require.NoError(t, err)

	impl := svc.(*qrcodeService)
	assert.Equal(t, defaultSize, impl.size)
	assert.Equal(t, qrcode.Medium, impl.errorCorrectionLevel)
}

func TestNewQRCodeService_InvalidBaseURL(t *testing.T) {
	_, err := NewQRCodeService(&config.QRCodeConfig{BaseURL: "not a url"})
	assert.Error(t, err)
}

func TestQRCodeService_GenerateListingQR(t *testing.T) {
	svc := newTestService(t)

	for _, size := range []int{128, 256, 512} {
		svc.size = size
		qrBytes, err := svc.GenerateListingQR(uuid.New())
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_ListingURLRoundTrip(t *testing.T) {
	svc := newTestService(t)
	listingID := uuid.New()

	link := svc.listingURL(listingID)
	assert.Equal(t, "https://deals.example.com/app/listings/"+listingID.String(), link)

	parsed, err := svc.ParseListingQR(link)
	require.NoError(t, err)
	assert.Equal(t, listingID, parsed)
}

func TestQRCodeService_ParseListingQR_Errors(t *testing.T) {
	svc := newTestService(t)
	id := uuid.NewString()

	tests := []struct {
		name string
		data string
	}{
		{"foreign host", "https://evil.example.com/app/listings/" + id},
		{"not a listing path", "https://deals.example.com/app/deals/" + id},
		{"bad uuid", "https://deals.example.com/app/listings/not-a-uuid"},
		{"unparseable", "://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseListingQR(tt.data)
			assert.Error(t, err)
		})
	}
}
