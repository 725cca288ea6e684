package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	ExplorerProfile *ExplorerProfileModel `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
	ScanRecords     []ScanRecordModel     `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ExplorerProfileModel mirrors the 'explorer_profiles' table. UserID references users.id (UUID).
// Points, level and scan counts are only ever written inside the scan transaction.
type ExplorerProfileModel struct {
	UserID           uuid.UUID `gorm:"primaryKey"`
	Level            int       `gorm:"not null;default:1"`
	Points           int       `gorm:"not null;default:0"`
	LocationsScanned int       `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExplorerProfileModel) TableName() string {
	return "explorer_profiles"
}
