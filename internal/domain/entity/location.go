// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a registered point of interest. Every location carries the QR
// artifact that was rendered when it was created; scanning that artifact is
// how explorers earn the location's points.
type Location struct {
	ID          uuid.UUID `json:"id"`                     // The Global Unique Identifier (GUID) for the location.
	Name        string    `json:"name"`                   // The display name of the location, e.g. "Rose Square".
	Address     string    `json:"address"`                // The full, human-readable street address.
	Latitude    float64   `json:"latitude"`               // The geographic latitude in decimal degrees.
	Longitude   float64   `json:"longitude"`              // The geographic longitude in decimal degrees.
	Points      int       `json:"points"`                 // The reward value credited for a first valid scan.
	QRArtifact  []byte    `json:"-"`                      // The rendered QR code image (PNG), immutable once persisted.
	ArtifactKey string    `json:"artifact_key,omitempty"` // Object storage key of the mirrored artifact, empty when mirroring is disabled.
	CreatedAt   time.Time `json:"created_at"`             // Timestamp of when this location was registered.
	UpdatedAt   time.Time `json:"updated_at"`             // Timestamp of the last modification.
}
