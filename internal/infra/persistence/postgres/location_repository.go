// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cityquest/internal/domain/entity"
	domainerrors "cityquest/internal/domain/errors"
	"cityquest/internal/domain/repository"
	"cityquest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listColumns excludes the artifact bytes from list and lookup queries.
// Artifacts can be hundreds of kilobytes and are only needed when serving the image itself.
var listColumns = []string{
	"id", "name", "address", "latitude", "longitude", "points", "artifact_key", "created_at", "updated_at",
}

// locationRepository implements the domain.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// Create persists a new location together with its rendered QR artifact.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLocationAlreadyExists.WrapMessage("location name already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrCoordinatesOutOfRange.WrapMessage("coordinates violate table constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindByID retrieves a location by its unique ID. The artifact bytes are not loaded.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Select(listColumns).
		Where("id = ?", id).
		First(&locationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// FindByName retrieves a location by its exact display name. The artifact bytes are not loaded.
func (repo *locationRepository) FindByName(ctx context.Context, name string) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Select(listColumns).
		Where("name = ?", name).
		First(&locationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by name")
	}

	return toLocationDomain(&locationM), nil
}

// FindByPayload retrieves the location candidate for a decoded QR payload by
// name and coordinates. Coordinates are matched with a small tolerance since
// the payload carries floats that went through JSON serialization. The caller
// verifies the remaining payload fields against the returned record.
func (repo *locationRepository) FindByPayload(ctx context.Context, name string, latitude, longitude float64) (*entity.Location, error) {
	const coordTolerance = 1e-6

	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Select(listColumns).
		Where("name = ?", name).
		Where("abs(latitude - ?) < ?", latitude, coordTolerance).
		Where("abs(longitude - ?) < ?", longitude, coordTolerance).
		First(&locationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by payload")
	}

	return toLocationDomain(&locationM), nil
}

// FindAll retrieves every registered location ordered by creation time. Artifact bytes are not loaded.
func (repo *locationRepository) FindAll(ctx context.Context) ([]*entity.Location, error) {
	var locationModels []model.LocationModel
	err := repo.db.WithContext(ctx).
		Select(listColumns).
		Order("created_at ASC").
		Find(&locationModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for i := range locationModels {
		locations = append(locations, toLocationDomain(&locationModels[i]))
	}

	return locations, nil
}

// GetArtifact retrieves the stored QR artifact bytes for a location.
func (repo *locationRepository) GetArtifact(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Select("id", "qr_artifact").
		Where("id = ?", id).
		First(&locationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to load location artifact")
	}

	return locationM.QRArtifact, nil
}

// Delete removes a location by its ID.
func (repo *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LocationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:          data.ID,
		Name:        data.Name,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Points:      data.Points,
		QRArtifact:  data.QRArtifact,
		ArtifactKey: data.ArtifactKey,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:          data.ID,
		Name:        data.Name,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Points:      data.Points,
		QRArtifact:  data.QRArtifact,
		ArtifactKey: data.ArtifactKey,
	}
}
