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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the explorer profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("ExplorerProfile").
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading the explorer profile.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("ExplorerProfile").
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its explorer profile, to the database.
// GORM's Create with associations inserts into users and explorer_profiles together.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.Profile != nil && userM.ExplorerProfile != nil {
		user.Profile.UserID = userM.ExplorerProfile.UserID
		user.Profile.UpdatedAt = userM.ExplorerProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	// Use Session with FullSaveAssociations to update the nested profile as well.
	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt
	if user.Profile != nil && userM.ExplorerProfile != nil {
		user.Profile.UpdatedAt = userM.ExplorerProfile.UpdatedAt
	}

	return nil
}

// UpdateProfile modifies only the explorer profile row for a user.
func (repo *userRepository) UpdateProfile(ctx context.Context, profile *entity.ExplorerProfile) error {
	profileM := fromExplorerProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Model(&model.ExplorerProfileModel{}).
		Where("user_id = ?", profileM.UserID).
		Updates(map[string]any{
			"level":             profileM.Level,
			"points":            profileM.Points,
			"locations_scanned": profileM.LocationsScanned,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update explorer profile")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		Profile:   toExplorerProfileDomain(data.ExplorerProfile),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           data.Email,
		Name:            data.Name,
		ExplorerProfile: fromExplorerProfileDomain(data.Profile),
	}
}

// toExplorerProfileDomain converts a GORM ExplorerProfileModel to a domain ExplorerProfile entity.
func toExplorerProfileDomain(data *model.ExplorerProfileModel) *entity.ExplorerProfile {
	if data == nil {
		return nil
	}

	return &entity.ExplorerProfile{
		UserID:           data.UserID,
		Level:            data.Level,
		Points:           data.Points,
		LocationsScanned: data.LocationsScanned,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromExplorerProfileDomain converts a domain ExplorerProfile entity to a GORM ExplorerProfileModel.
func fromExplorerProfileDomain(data *entity.ExplorerProfile) *model.ExplorerProfileModel {
	if data == nil {
		return nil
	}

	return &model.ExplorerProfileModel{
		UserID:           data.UserID,
		Level:            data.Level,
		Points:           data.Points,
		LocationsScanned: data.LocationsScanned,
		UpdatedAt:        data.UpdatedAt,
	}
}
