package qrcode

import (
	"encoding/json"
	"testing"

	"bizdir/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://directory.example.com"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, testBaseURL)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateShareQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	qrBytes, err := service.GenerateShareQR(42)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseShareQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	data := QRCodeData{
		BusinessID: "42",
		URL:        testBaseURL + "/businesses/42",
		Type:       "share",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	businessID, err := service.ParseShareQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, entity.ID(42), businessID)
}

func TestQRCodeService_ParseShareQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	data := QRCodeData{BusinessID: "42", Type: "subscription"}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseShareQR(string(jsonData))
	assert.Error(t, err)
}

func TestQRCodeService_ParseShareQR_Malformed(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	_, err := service.ParseShareQR("not-json")
	assert.Error(t, err)

	data := QRCodeData{BusinessID: "not-a-number", Type: "share"}
	jsonData, marshalErr := json.Marshal(data)
	require.NoError(t, marshalErr)

	_, err = service.ParseShareQR(string(jsonData))
	assert.Error(t, err)
}
