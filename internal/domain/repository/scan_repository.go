// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cityquest/internal/domain/entity"
	"cityquest/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for the scan ledger.
var (
	// ErrScanRecordNotFound is returned when no ledger entry exists for a user/location pair.
	ErrScanRecordNotFound = errors.New("scan record not found")
	// ErrDuplicateScanRecord is returned when a ledger entry for the user/location pair already exists.
	// The unique constraint on (user_id, location_id) is what enforces once-ever rewards.
	ErrDuplicateScanRecord = errors.New("scan record already exists")
)

// ScanRepository defines the interface for the reward ledger.
type ScanRepository interface {
	// Create appends a new ledger entry. Returns ErrDuplicateScanRecord when
	// the user has already scanned this location.
	Create(ctx context.Context, record *entity.ScanRecord) error

	// FindByUserAndLocation retrieves the ledger entry for a user/location pair.
	FindByUserAndLocation(ctx context.Context, userID, locationID uuid.UUID) (*entity.ScanRecord, error)

	// FindByUser retrieves all ledger entries for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ScanRecord, error)

	// CountByUser returns the number of distinct locations a user has scanned.
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
