// Package qrcode renders share QR codes that open a listing page when scanned.
package qrcode

import (
	"net/url"
	"path"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://marketplace.local"
	listingsPath   = "listings"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// NewQRCodeService creates the QR code service; missing settings fall back to a 256px medium-recovery code.
func NewQRCodeService(cfg *config.QRCodeConfig) (service.QRCodeService, error) {
	size, level, base := defaultSize, "M", defaultBaseURL
	if cfg != nil {
		if cfg.Size > 0 {
			size = cfg.Size
		}
		if cfg.ErrorCorrectionLevel != "" {
			level = cfg.ErrorCorrectionLevel
		}
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
	}

	baseURL, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Errorf("invalid qrcode base url: %q", base)
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
		baseURL:              baseURL,
	}, nil
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
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

// listingURL is the payload encoded in the QR code.
func (s *qrcodeService) listingURL(listingID uuid.UUID) string {
	u := *s.baseURL
	u.Path = path.Join(u.Path, listingsPath, listingID.String())

	return u.String()
}

// GenerateListingQR renders a PNG QR code linking to the listing page
func (s *qrcodeService) GenerateListingQR(listingID uuid.UUID) ([]byte, error) {
	pngBytes, err := qrcode.Encode(s.listingURL(listingID), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return pngBytes, nil
}

// ParseListingQR extracts the listing ID from a scanned listing URL
func (s *qrcodeService) ParseListingQR(qrData string) (uuid.UUID, error) {
	u, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code payload")
	}
	if u.Host != s.baseURL.Host {
		return uuid.Nil, errors.Errorf("QR code points at a foreign host: %s", u.Host)
	}

	dir, last := path.Split(strings.TrimRight(u.Path, "/"))
	if path.Base(dir) != listingsPath {
		return uuid.Nil, errors.Errorf("QR code is not a listing link: %s", u.Path)
	}

	listingID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse listing ID")
	}

	return listingID, nil
}
