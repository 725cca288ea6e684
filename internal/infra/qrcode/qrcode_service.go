package qrcode

import (
	"encoding/json"
	"fmt"

	"cityquest/internal/domain/entity"
	"cityquest/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// ErrPayloadTooLarge is returned when the encoded payload exceeds QR capacity
// at the configured error correction level.
var ErrPayloadTooLarge = fmt.Errorf("payload exceeds QR code capacity")

// ErrInvalidPoints is returned when a decoded payload carries a points value
// that is not a non-negative integer.
var ErrInvalidPoints = fmt.Errorf("payload points must be a non-negative integer")

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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
	}
}

// EncodeLocationPayload serializes a location into the canonical QR payload string.
// Field order is fixed by the payload struct, so equal locations always produce
// byte-identical payloads.
func (s *qrcodeService) EncodeLocationPayload(location *entity.Location) (string, error) {
	payload := service.LocationPayload{
		ID:        location.ID.String(),
		Name:      location.Name,
		Address:   location.Address,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Points:    location.Points,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR code payload: %w", err)
	}

	return string(jsonData), nil
}

// DecodeLocationPayload parses raw scanned data back into a payload.
func (s *qrcodeService) DecodeLocationPayload(qrData string) (*service.LocationPayload, error) {
	var payload service.LocationPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code payload: %w", err)
	}

	// A payload without a name cannot identify any location.
	if payload.Name == "" {
		return nil, fmt.Errorf("QR code payload has no location name")
	}
	if payload.Latitude < -90 || payload.Latitude > 90 {
		return nil, fmt.Errorf("latitude out of range: %f", payload.Latitude)
	}
	if payload.Longitude < -180 || payload.Longitude > 180 {
		return nil, fmt.Errorf("longitude out of range: %f", payload.Longitude)
	}
	if payload.Points < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPoints, payload.Points)
	}

	return &payload, nil
}

// RenderLocationQR encodes the location payload and renders it as a PNG image.
func (s *qrcodeService) RenderLocationQR(location *entity.Location) ([]byte, error) {
	payload, err := s.EncodeLocationPayload(location)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		// go-qrcode fails version selection when the content does not fit.
		return nil, fmt.Errorf("%w: %v", ErrPayloadTooLarge, err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
