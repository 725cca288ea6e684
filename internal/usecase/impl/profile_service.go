package impl

import (
	"context"
	"log/slog"

	deliverycontext "cityquest/internal/delivery/context"
	"cityquest/internal/domain/entity"
	domainerrors "cityquest/internal/domain/errors"
	"cityquest/internal/domain/repository"
	"cityquest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// GetProfile returns the user's identity and explorer progress. Accounts
// created before profiles existed get a zero-progress view rather than an
// error.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user does not exist")
		}

		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to load profile",
			slog.Any("userID", userID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to load profile")
	}

	profile := user.Profile
	if profile == nil {
		profile = &entity.ExplorerProfile{UserID: user.ID, Level: 1}
	}

	return &usecase.ProfileOutput{
		User:    user,
		Profile: profile,
	}, nil
}
