package usecase

import (
	"context"

	"cityquest/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterLocationInput defines the data required to register a new location.
// Registration renders the QR artifact and stores it with the location row.
type RegisterLocationInput struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Points    int
}

// RegisterLocationOutput returns the stored location. The artifact is not
// returned inline; clients fetch it from the artifact endpoint.
type RegisterLocationOutput struct {
	Location *entity.Location
}

// LocationArtifactOutput returns the rendered QR image for a location.
type LocationArtifactOutput struct {
	ContentType string
	Data        []byte
}

// LocationUsecase defines the interface for location registry operations.
type LocationUsecase interface {
	// RegisterLocation validates the input, renders the QR artifact and
	// persists both in a single transaction.
	RegisterLocation(ctx context.Context, input *RegisterLocationInput) (*RegisterLocationOutput, error)

	// GetLocation returns a single registered location.
	GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// ListLocations returns every registered location in registration order.
	ListLocations(ctx context.Context) ([]*entity.Location, error)

	// GetLocationArtifact returns the stored QR image for a location.
	GetLocationArtifact(ctx context.Context, id uuid.UUID) (*LocationArtifactOutput, error)

	// DeleteLocation removes a location from the registry. Ledger entries
	// referencing it are kept; earned points are never clawed back.
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}
