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

// scanRepository implements the domain.ScanRepository interface.
type scanRepository struct {
	db *gorm.DB
}

// NewScanRepository is the constructor for scanRepository.
func NewScanRepository(db *gorm.DB) repository.ScanRepository {
	return &scanRepository{db: db}
}

// Create appends a new ledger entry. The unique (user_id, location_id) index
// turns a repeat scan into ErrDuplicateScanRecord instead of a second reward.
func (repo *scanRepository) Create(ctx context.Context, record *entity.ScanRecord) error {
	recordM := fromScanRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateScanRecord
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrScanRecordFailed.WrapMessage("invalid user or location reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create scan record")
	}

	record.ID = recordM.ID

	return nil
}

// FindByUserAndLocation retrieves the ledger entry for a user/location pair.
func (repo *scanRepository) FindByUserAndLocation(ctx context.Context, userID, locationID uuid.UUID) (*entity.ScanRecord, error) {
	var recordM model.ScanRecordModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND location_id = ?", userID, locationID).
		First(&recordM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScanRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find scan record")
	}

	return toScanRecordDomain(&recordM), nil
}

// FindByUser retrieves all ledger entries for a user, newest first.
func (repo *scanRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ScanRecord, error) {
	var recordModels []model.ScanRecordModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scanned_at DESC").
		Find(&recordModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scan records")
	}

	records := make([]*entity.ScanRecord, 0, len(recordModels))
	for i := range recordModels {
		records = append(records, toScanRecordDomain(&recordModels[i]))
	}

	return records, nil
}

// CountByUser returns the number of distinct locations a user has scanned.
func (repo *scanRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ScanRecordModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return int(count), nil
}

// --- Mapper Functions ---

// toScanRecordDomain converts a GORM ScanRecordModel to a domain ScanRecord entity.
func toScanRecordDomain(data *model.ScanRecordModel) *entity.ScanRecord {
	if data == nil {
		return nil
	}

	return &entity.ScanRecord{
		ID:            data.ID,
		UserID:        data.UserID,
		LocationID:    data.LocationID,
		PointsAwarded: data.PointsAwarded,
		ScannedAt:     data.ScannedAt,
	}
}

// fromScanRecordDomain converts a domain ScanRecord entity to a GORM ScanRecordModel.
func fromScanRecordDomain(data *entity.ScanRecord) *model.ScanRecordModel {
	if data == nil {
		return nil
	}

	return &model.ScanRecordModel{
		ID:            data.ID,
		UserID:        data.UserID,
		LocationID:    data.LocationID,
		PointsAwarded: data.PointsAwarded,
		ScannedAt:     data.ScannedAt,
	}
}
