package usecase

import (
	"context"

	"cityquest/internal/domain/entity"

	"github.com/google/uuid"
)

// InterpretScanInput carries one raw QR payload captured by the client.
// Scanner coordinates are optional; when present they are only used for the
// distance hint and event enrichment, never to gate the reward.
type InterpretScanInput struct {
	UserID    uuid.UUID
	Payload   string
	Latitude  *float64
	Longitude *float64
}

// InterpretScanOutput reports what the payload resolved to and what it earned.
type InterpretScanOutput struct {
	Result *entity.ScanResult
}

// ScanUsecase defines the interface for interpreting scanned QR payloads and
// maintaining the reward ledger.
type ScanUsecase interface {
	// InterpretScan decodes the payload, resolves it against the registry and
	// applies the once-ever reward inside a single transaction.
	InterpretScan(ctx context.Context, input *InterpretScanInput) (*InterpretScanOutput, error)

	// GetScanHistory returns the user's ledger entries, newest first.
	GetScanHistory(ctx context.Context, userID uuid.UUID) ([]*entity.ScanRecord, error)
}
