package qrcode

import (
	"encoding/json"
	"strings"

	"sarahkyoga/config"
	"sarahkyoga/internal/domain/service"
	"sarahkyoga/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize     = 256
	checkInCodeType = "checkin"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// CheckInData is the payload encoded in an order's check-in code
type CheckInData struct {
	OrderNumber string `json:"order_number"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// NewFromConfig builds the service from the qrcode config section
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateOrderQR generates a PNG check-in code for an order
func (s *qrcodeService) GenerateOrderQR(orderNumber string) ([]byte, error) {
	if orderNumber == "" {
		return nil, errors.New("order number is required")
	}

	jsonData, err := json.Marshal(CheckInData{OrderNumber: orderNumber, Type: checkInCodeType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCheckInData decodes a scanned check-in payload and returns the order number
func ParseCheckInData(qrData string) (string, error) {
	var data CheckInData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != checkInCodeType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderNumber == "" {
		return "", errors.New("missing order number")
	}

	return data.OrderNumber, nil
}
