package impl

import (
	"context"
	"log/slog"
	"time"

	"cityquest/config"
	deliverycontext "cityquest/internal/delivery/context"
	"cityquest/internal/domain/entity"
	"cityquest/internal/domain/repository"
	"cityquest/internal/domain/service"
	"cityquest/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultPointsPerLevel is used when no reward configuration is provided.
const defaultPointsPerLevel = 100

// scanService implements the ScanUsecase interface.
type scanService struct {
	txManager      repository.TransactionManager
	locationRepo   repository.LocationRepository
	scanRepo       repository.ScanRepository
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	pointsPerLevel int
	logger         *slog.Logger
}

// ScanServiceParams holds dependencies for ScanService, injected by Fx.
type ScanServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	LocationRepo   repository.LocationRepository
	ScanRepo       repository.ScanRepository
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewScanService is the constructor for scanService.
func NewScanService(params ScanServiceParams) usecase.ScanUsecase {
	pointsPerLevel := defaultPointsPerLevel
	if params.Config.Reward != nil && params.Config.Reward.PointsPerLevel > 0 {
		pointsPerLevel = params.Config.Reward.PointsPerLevel
	}

	return &scanService{
		txManager:      params.TxManager,
		locationRepo:   params.LocationRepo,
		scanRepo:       params.ScanRepo,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		pointsPerLevel: pointsPerLevel,
		logger:         params.Logger,
	}
}

func (srv *scanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InterpretScan decodes the payload, resolves it against the registry and
// applies the once-ever reward inside a single transaction. A payload that
// cannot be decoded or matched is a normal outcome, not an error.
func (srv *scanService) InterpretScan(ctx context.Context, input *usecase.InterpretScanInput) (*usecase.InterpretScanOutput, error) {
	payload, err := srv.qrcodeService.DecodeLocationPayload(input.Payload)
	if err != nil {
		srv.log(ctx).Info("Scan payload rejected",
			slog.Any("userID", input.UserID),
			slog.Any("error", err),
		)

		return &usecase.InterpretScanOutput{Result: &entity.ScanResult{
			Outcome:        entity.ScanOutcomeInvalid,
			DistanceMeters: -1,
		}}, nil
	}

	location, err := srv.resolveLocation(ctx, payload)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			srv.log(ctx).Info("Scan payload matched no registered location",
				slog.Any("userID", input.UserID),
				slog.String("name", payload.Name),
			)

			return &usecase.InterpretScanOutput{Result: &entity.ScanResult{
				Outcome:        entity.ScanOutcomeUnknown,
				DistanceMeters: -1,
			}}, nil
		}

		return nil, errors.Wrap(err, "failed to resolve scan payload")
	}

	result, err := srv.applyReward(ctx, input.UserID, location)
	if err != nil {
		return nil, err
	}

	result.DistanceMeters = scannerDistance(input.Latitude, input.Longitude, location)

	srv.publishScanEvent(ctx, input, location, result)

	return &usecase.InterpretScanOutput{Result: result}, nil
}

// GetScanHistory returns the user's ledger entries, newest first.
func (srv *scanService) GetScanHistory(ctx context.Context, userID uuid.UUID) ([]*entity.ScanRecord, error) {
	records, err := srv.scanRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load scan history")
	}

	return records, nil
}

// resolveLocation matches a decoded payload to a registered location.
// Payloads carrying an ID resolve by primary key; legacy payloads fall back
// to a content match. Either way the payload content must equal the stored
// record on every field before the scan counts as matched.
func (srv *scanService) resolveLocation(ctx context.Context, payload *service.LocationPayload) (*entity.Location, error) {
	if payload.ID != "" {
		id, err := uuid.Parse(payload.ID)
		if err == nil {
			location, err := srv.locationRepo.FindByID(ctx, id)
			switch {
			case err == nil:
				if payloadMatchesLocation(payload, location) {
					return location, nil
				}
				// A real ID with different content is either a forged payload
				// or an artifact from before the location was re-registered.
				// Try the content match below instead.
			case !errors.Is(err, repository.ErrLocationNotFound):
				return nil, err
			}
			// The ID no longer resolves, try the content match below. This
			// covers locations that were deleted and later re-registered.
		}
	}

	location, err := srv.locationRepo.FindByPayload(ctx, payload.Name, payload.Latitude, payload.Longitude)
	if err != nil {
		return nil, err
	}

	// The repository matches on name and coordinates only; address and points
	// are verified here so every payload field must agree with the registry.
	if !payloadMatchesLocation(payload, location) {
		return nil, repository.ErrLocationNotFound
	}

	return location, nil
}

// payloadMatchesLocation reports whether the payload content equals the stored
// record on all five fields. A payload that only gets the ID right must not
// award that location's points.
func payloadMatchesLocation(payload *service.LocationPayload, location *entity.Location) bool {
	return payload.Name == location.Name &&
		payload.Address == location.Address &&
		payload.Latitude == location.Latitude &&
		payload.Longitude == location.Longitude &&
		payload.Points == location.Points
}

// applyReward records the scan and credits the profile. The unique ledger
// index is the arbiter: a duplicate insert means this user already scanned the
// location, so no points move and the stored profile is returned as-is.
func (srv *scanService) applyReward(ctx context.Context, userID uuid.UUID, location *entity.Location) (*entity.ScanResult, error) {
	result := &entity.ScanResult{
		Outcome:  entity.ScanOutcomeMatched,
		Location: location,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load user for reward")
		}

		profile := user.Profile
		if profile == nil {
			profile = &entity.ExplorerProfile{UserID: userID, Level: 1}
		}

		record := &entity.ScanRecord{
			ID:            uuid.New(),
			UserID:        userID,
			LocationID:    location.ID,
			PointsAwarded: location.Points,
			ScannedAt:     time.Now(),
		}

		if err := repoFactory.NewScanRepository().Create(ctx, record); err != nil {
			if errors.Is(err, repository.ErrDuplicateScanRecord) {
				result.AlreadyScanned = true
				result.ProfileAfterScan = profile

				return nil
			}

			return errors.Wrap(err, "failed to record scan")
		}

		profile.Points += location.Points
		profile.LocationsScanned++
		profile.Level = 1 + profile.Points/srv.pointsPerLevel

		if err := userRepo.UpdateProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to credit profile")
		}

		result.PointsAwarded = record.PointsAwarded
		result.ProfileAfterScan = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to apply scan reward",
			slog.Any("userID", userID),
			slog.Any("locationID", location.ID),
			slog.Any("error", err),
		)

		return nil, err
	}

	return result, nil
}

// publishScanEvent emits the event for async consumers. Publishing is
// best-effort; the reward is already committed.
func (srv *scanService) publishScanEvent(ctx context.Context, input *usecase.InterpretScanInput, location *entity.Location, result *entity.ScanResult) {
	event := &service.ScanEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		UserID:        input.UserID.String(),
		LocationID:    location.ID.String(),
		LocationName:  location.Name,
		PointsAwarded: result.PointsAwarded,
		Latitude:      location.Latitude,
		Longitude:     location.Longitude,
	}
	if result.ProfileAfterScan != nil {
		event.TotalPoints = result.ProfileAfterScan.Points
		event.Level = result.ProfileAfterScan.Level
	}

	if err := srv.eventPublisher.PublishScanEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish scan event",
			slog.Any("userID", input.UserID),
			slog.Any("locationID", location.ID),
			slog.Any("error", err),
		)
	}
}

// scannerDistance computes the great-circle distance in meters between the
// scanner and the location. Returns -1 when the scanner sent no coordinates.
func scannerDistance(lat, lon *float64, location *entity.Location) float64 {
	if lat == nil || lon == nil {
		return -1
	}

	scanner := orb.Point{*lon, *lat}
	target := orb.Point{location.Longitude, location.Latitude}

	return geo.Distance(scanner, target)
}
