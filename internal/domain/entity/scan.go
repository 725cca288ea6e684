// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScanOutcome classifies what happened when a QR payload was interpreted.
type ScanOutcome string

const (
	// ScanOutcomeMatched means the payload resolved to a registered location.
	ScanOutcomeMatched ScanOutcome = "matched"
	// ScanOutcomeUnknown means the payload was well-formed but no registered location matches it.
	ScanOutcomeUnknown ScanOutcome = "unknown"
	// ScanOutcomeInvalid means the payload could not be decoded at all.
	ScanOutcomeInvalid ScanOutcome = "invalid"
)

// ScanRecord is one row of the reward ledger. At most one record exists per
// (UserID, LocationID) pair; the unique index rejects the insert on a repeat
// scan, which is what makes a reward once-ever.
type ScanRecord struct {
	ID            uuid.UUID // The unique ID for this ledger entry.
	UserID        uuid.UUID // The explorer who performed the scan.
	LocationID    uuid.UUID // The registered location the payload resolved to.
	PointsAwarded int       // Points credited by this scan. Zero for repeat scans.
	ScannedAt     time.Time // Timestamp of when the scan was interpreted.
}

// ScanResult is what the interpreter returns to the client after a scan.
type ScanResult struct {
	Outcome          ScanOutcome // Classification of the payload.
	Location         *Location   // The matched location, nil unless Outcome is matched.
	PointsAwarded    int         // Points credited by this scan, zero on a repeat.
	AlreadyScanned   bool        // True when this user had already scanned the location.
	DistanceMeters   float64     // Great-circle distance from the scanner to the location, -1 when unknown.
	ProfileAfterScan *ExplorerProfile
}
