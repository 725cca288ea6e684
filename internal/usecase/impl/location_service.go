// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cityquest/config"
	deliverycontext "cityquest/internal/delivery/context"
	"cityquest/internal/domain/entity"
	domainerrors "cityquest/internal/domain/errors"
	"cityquest/internal/domain/repository"
	"cityquest/internal/domain/service"
	"cityquest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const artifactContentType = "image/png"

// locationService implements the LocationUsecase interface.
type locationService struct {
	txManager       repository.TransactionManager
	locationRepo    repository.LocationRepository
	qrcodeService   service.QRCodeService
	artifactStorage service.ArtifactStorage
	logger          *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	LocationRepo    repository.LocationRepository
	QRCodeService   service.QRCodeService
	ArtifactStorage service.ArtifactStorage
	Config          *config.Config
	Logger          *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		txManager:       params.TxManager,
		locationRepo:    params.LocationRepo,
		qrcodeService:   params.QRCodeService,
		artifactStorage: params.ArtifactStorage,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterLocation validates the input, renders the QR artifact and persists
// both in a single insert. The ID is assigned before rendering so the payload
// can embed it.
func (srv *locationService) RegisterLocation(ctx context.Context, input *usecase.RegisterLocationInput) (*usecase.RegisterLocationOutput, error) {
	srv.log(ctx).Info("Registering location", slog.String("name", input.Name))

	if err := validateLocationInput(input); err != nil {
		return nil, err
	}

	location := &entity.Location{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Address:   strings.TrimSpace(input.Address),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Points:    input.Points,
	}
	location.ArtifactKey = artifactKey(location.ID)

	artifact, err := srv.qrcodeService.RenderLocationQR(location)
	if err != nil {
		srv.log(ctx).Error("Failed to render QR artifact", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrQRRenderFailed, err.Error())
	}
	location.QRArtifact = artifact

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewLocationRepository().Create(ctx, location)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist location", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist location")
	}

	// Mirror the artifact to object storage. The row already holds the bytes,
	// so a mirror failure is logged but does not fail the registration.
	if err := srv.artifactStorage.Put(ctx, location.ArtifactKey, artifact, artifactContentType); err != nil {
		srv.log(ctx).Warn("Failed to mirror QR artifact",
			slog.Any("locationID", location.ID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Location registered",
		slog.Any("locationID", location.ID),
		slog.Int("points", location.Points),
	)

	return &usecase.RegisterLocationOutput{Location: location}, nil
}

// GetLocation returns a single registered location.
func (srv *locationService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := srv.locationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound.WrapMessage("location does not exist")
		}

		return nil, errors.Wrap(err, "failed to load location")
	}

	return location, nil
}

// ListLocations returns every registered location in registration order.
func (srv *locationService) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	locations, err := srv.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locations, nil
}

// GetLocationArtifact returns the stored QR image for a location.
func (srv *locationService) GetLocationArtifact(ctx context.Context, id uuid.UUID) (*usecase.LocationArtifactOutput, error) {
	artifact, err := srv.locationRepo.GetArtifact(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound.WrapMessage("location does not exist")
		}

		return nil, errors.Wrap(err, "failed to load location artifact")
	}
	if len(artifact) == 0 {
		return nil, domainerrors.ErrNotFound.WrapMessage("location has no stored artifact")
	}

	return &usecase.LocationArtifactOutput{
		ContentType: artifactContentType,
		Data:        artifact,
	}, nil
}

// DeleteLocation removes a location from the registry. Ledger entries that
// reference it are preserved, so earned points survive the removal.
func (srv *locationService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting location", slog.Any("locationID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewLocationRepository().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrLocationNotFound.WrapMessage("location does not exist")
		}

		return errors.Wrap(err, "failed to delete location")
	}

	// Best-effort removal of the mirrored artifact.
	if err := srv.artifactStorage.Delete(ctx, artifactKey(id)); err != nil {
		srv.log(ctx).Warn("Failed to delete mirrored artifact", slog.Any("locationID", id), slog.Any("error", err))
	}

	return nil
}

// validateLocationInput applies the registry's validity rules.
func validateLocationInput(input *usecase.RegisterLocationInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("location name is required")
	}
	if input.Latitude < -90 || input.Latitude > 90 {
		return domainerrors.ErrCoordinatesOutOfRange.WrapMessage(fmt.Sprintf("latitude %f out of range", input.Latitude))
	}
	if input.Longitude < -180 || input.Longitude > 180 {
		return domainerrors.ErrCoordinatesOutOfRange.WrapMessage(fmt.Sprintf("longitude %f out of range", input.Longitude))
	}
	if input.Points < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("points must not be negative")
	}

	return nil
}

// artifactKey is the object storage key for a location's mirrored artifact.
func artifactKey(id uuid.UUID) string {
	return "locations/" + id.String() + ".png"
}
