// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cityquest/internal/domain/entity"
	"cityquest/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrDuplicateLocation is returned when trying to register a location whose name is already taken.
	ErrDuplicateLocation = errors.New("location already exists")
)

// LocationRepository defines the interface for location-related database operations.
// The QR artifact lives in the same row as the location, so creating a location
// and storing its artifact is a single write.
type LocationRepository interface {
	// Create persists a new location together with its rendered QR artifact.
	Create(ctx context.Context, location *entity.Location) error

	// FindByID retrieves a location by its unique ID. The artifact bytes are not loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindByName retrieves a location by its exact display name. The artifact bytes are not loaded.
	FindByName(ctx context.Context, name string) (*entity.Location, error)

	// FindByPayload retrieves the location whose name and coordinates match
	// the decoded QR payload. Used as a fallback for artifacts printed before
	// payloads carried the location ID; the caller checks the remaining
	// payload fields. The artifact bytes are not loaded.
	FindByPayload(ctx context.Context, name string, latitude, longitude float64) (*entity.Location, error)

	// FindAll retrieves every registered location ordered by creation time. Artifact bytes are not loaded.
	FindAll(ctx context.Context) ([]*entity.Location, error)

	// GetArtifact retrieves the stored QR artifact bytes for a location.
	GetArtifact(ctx context.Context, id uuid.UUID) ([]byte, error)

	// Delete removes a location by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
