package service

import (
	"cityquest/internal/domain/entity"
)

// LocationPayload is the wire form carried inside a location QR code.
// The ID field was added after the first artifacts were printed, so decoders
// must accept payloads without it and fall back to content matching.
type LocationPayload struct {
	ID        string  `json:"id,omitempty"` // Location ID, empty on legacy artifacts.
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Points    int     `json:"points"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// EncodeLocationPayload serializes a location into the canonical QR payload string.
	EncodeLocationPayload(location *entity.Location) (string, error)

	// DecodeLocationPayload parses raw scanned data back into a payload.
	DecodeLocationPayload(qrData string) (*LocationPayload, error)

	// RenderLocationQR encodes the location payload and renders it as a PNG image.
	RenderLocationQR(location *entity.Location) ([]byte, error)
}
