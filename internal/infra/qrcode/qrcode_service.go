// Package qrcode renders restaurant follow codes.
package qrcode

import (
	"encoding/json"
	"strings"

	"foodiecircle/internal/domain/service"
	"foodiecircle/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	payloadType    = "follow_restaurant"
	payloadVersion = 1
	maxNameLength  = 200
)

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// FollowPayload is the JSON encoded in a restaurant follow QR code.
type FollowPayload struct {
	Type       string `json:"type"`
	Version    int    `json:"v"`
	Restaurant string `json:"restaurant"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	return &qrcodeService{
		size:  size,
		level: recoveryLevel(errorCorrectionLevel),
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

// GenerateRestaurantQR renders a PNG follow code for restaurantName.
func (s *qrcodeService) GenerateRestaurantQR(restaurantName string) ([]byte, error) {
	name := strings.TrimSpace(restaurantName)
	if name == "" || len(name) > maxNameLength {
		return nil, errors.Errorf("invalid restaurant name length: %d", len(name))
	}

	jsonData, err := json.Marshal(FollowPayload{Type: payloadType, Version: payloadVersion, Restaurant: name})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseRestaurantQR returns the restaurant name from a scanned payload.
func (s *qrcodeService) ParseRestaurantQR(qrData string) (string, error) {
	var data FollowPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != payloadType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	name := strings.TrimSpace(data.Restaurant)
	if name == "" {
		return "", errors.New("QR code has no restaurant")
	}

	return name, nil
}
