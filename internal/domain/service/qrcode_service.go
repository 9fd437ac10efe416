package service

import (
	"bizdir/internal/domain/entity"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateShareQR generates a QR code encoding a business listing link
	GenerateShareQR(businessID entity.ID) ([]byte, error)

	// ParseShareQR parses QR code data and returns the business ID
	ParseShareQR(qrData string) (entity.ID, error)
}
