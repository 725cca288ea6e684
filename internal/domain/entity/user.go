// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information.
type User struct {
	ID        uuid.UUID        // The Global Unique Identifier (GUID) for the user.
	Email     string           // The user's primary contact email, often used as a login identifier.
	Name      string           // The user's display name or real name.
	Profile   *ExplorerProfile // A pointer to the explorer profile holding points and scan progress.
	CreatedAt time.Time        // Timestamp of when this user account was created.
	UpdatedAt time.Time        // Timestamp of the last modification to this user's data.
}

// ExplorerProfile holds the gamification state shown on the dashboard.
// Points, Level and LocationsScanned are written exclusively by the reward
// ledger; no other code path may mutate them.
type ExplorerProfile struct {
	UserID           uuid.UUID // Foreign Key that links this profile to a core User entity.
	Level            int       // The explorer level, derived from accumulated points.
	Points           int       // Total points earned from valid, novel scans.
	LocationsScanned int       // Number of distinct locations this user has scanned.
	UpdatedAt        time.Time // Timestamp of the last modification to this profile.
}
