package model

import (
	"time"

	"github.com/google/uuid"
)

// ScanRecordModel mirrors the 'scan_records' table, the reward ledger.
// The unique index on (user_id, location_id) is the database-level guarantee
// that a location rewards each explorer at most once.
type ScanRecordModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_scan_user_location"`
	LocationID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_scan_user_location"`
	PointsAwarded int       `gorm:"not null;default:0"`
	ScannedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ScanRecordModel) TableName() string {
	return "scan_records"
}
