package usecase

import (
	"context"

	"cityquest/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileOutput bundles the user identity with the explorer progress shown on
// the dashboard.
type ProfileOutput struct {
	User    *entity.User
	Profile *entity.ExplorerProfile
}

// ProfileUsecase defines the interface for reading explorer profiles.
type ProfileUsecase interface {
	// GetProfile returns the user's identity and progress.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
}
