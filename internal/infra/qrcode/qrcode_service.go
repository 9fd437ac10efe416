package qrcode

import (
	"encoding/json"
	"fmt"

	"bizdir/internal/domain/entity"
	"bizdir/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	BusinessID string `json:"business_id"`
	URL        string `json:"url"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateShareQR generates a QR code encoding a business listing link
func (s *qrcodeService) GenerateShareQR(businessID entity.ID) ([]byte, error) {
	data := QRCodeData{
		BusinessID: businessID.String(),
		URL:        fmt.Sprintf("%s/businesses/%s", s.baseURL, businessID),
		Type:       "share",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShareQR parses QR code data and returns the business ID
func (s *qrcodeService) ParseShareQR(qrData string) (entity.ID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "share" {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	businessID, err := entity.ParseID(data.BusinessID)
	if err != nil {
		return 0, fmt.Errorf("failed to parse business ID: %w", err)
	}

	return businessID, nil
}
