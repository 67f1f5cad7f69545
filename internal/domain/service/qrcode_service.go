package service

import "github.com/google/uuid"

// QRCodeService defines the interface for listing share QR codes
type QRCodeService interface {
	// GenerateListingQR renders a PNG QR code pointing at the listing
	GenerateListingQR(listingID uuid.UUID) ([]byte, error)

	// ParseListingQR extracts the listing ID from scanned QR payload
	ParseListingQR(qrData string) (uuid.UUID, error)
}
