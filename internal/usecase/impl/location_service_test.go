package impl

import (
	"context"
	"testing"

	"cityquest/internal/domain/entity"
	domainerrors "cityquest/internal/domain/errors"
	"cityquest/internal/domain/repository"
	mockRepo "cityquest/internal/mocks/repository"
	mockService "cityquest/internal/mocks/service"
	"cityquest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service         usecase.LocationUsecase
	txManager       *mockRepo.MockTransactionManager
	locationRepo    *mockRepo.MockLocationRepository
	qrcodeService   *mockService.MockQRCodeService
	artifactStorage *mockService.MockArtifactStorage
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	artifactStorage := mockService.NewMockArtifactStorage(t)

	svc := NewLocationService(LocationServiceParams{
		TxManager:       txManager,
		LocationRepo:    locationRepo,
		QRCodeService:   qrcodeService,
		ArtifactStorage: artifactStorage,
		Config:          newTestConfig(0),
		Logger:          newDiscardLogger(),
	})

	return locationServiceFixtures{
		service:         svc,
		txManager:       txManager,
		locationRepo:    locationRepo,
		qrcodeService:   qrcodeService,
		artifactStorage: artifactStorage,
	}
}

func validRegisterInput() *usecase.RegisterLocationInput {
	return &usecase.RegisterLocationInput{
		Name:      "Rose Square",
		Address:   "Liela iela 1, Liepaja",
		Latitude:  56.5110,
		Longitude: 21.0138,
		Points:    10,
	}
}

func TestLocationService_RegisterLocation_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	input := validRegisterInput()
	artifact := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.qrcodeService.EXPECT().
		RenderLocationQR(mock.AnythingOfType("*entity.Location")).
		Return(artifact, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().NewLocationRepository().Return(mockLocationRepo)
			mockLocationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Location")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.artifactStorage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), artifact, "image/png").
		Return(nil)

	output, err := fx.service.RegisterLocation(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.Location)
	assert.NotEqual(t, uuid.Nil, output.Location.ID)
	assert.Equal(t, input.Name, output.Location.Name)
	assert.Equal(t, artifact, output.Location.QRArtifact)
	assert.Contains(t, output.Location.ArtifactKey, output.Location.ID.String())
}

func TestLocationService_RegisterLocation_MirrorFailureDoesNotFail(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.qrcodeService.EXPECT().
		RenderLocationQR(mock.AnythingOfType("*entity.Location")).
		Return([]byte{0x89}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().NewLocationRepository().Return(mockLocationRepo)
			mockLocationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)

			return fn(mockFactory)
		})

	fx.artifactStorage.EXPECT().
		Put(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8"), "image/png").
		Return(errors.New("bucket unavailable"))

	output, err := fx.service.RegisterLocation(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output.Location)
}

func TestLocationService_RegisterLocation_InvalidInput(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	tests := []struct {
		name        string
		mutate      func(*usecase.RegisterLocationInput)
		expectedErr error
	}{
		{
			name:        "empty name",
			mutate:      func(in *usecase.RegisterLocationInput) { in.Name = "   " },
			expectedErr: domainerrors.ErrValidationFailed,
		},
		{
			name:        "latitude out of range",
			mutate:      func(in *usecase.RegisterLocationInput) { in.Latitude = 91 },
			expectedErr: domainerrors.ErrCoordinatesOutOfRange,
		},
		{
			name:        "longitude out of range",
			mutate:      func(in *usecase.RegisterLocationInput) { in.Longitude = -181 },
			expectedErr: domainerrors.ErrCoordinatesOutOfRange,
		},
		{
			name:        "negative points",
			mutate:      func(in *usecase.RegisterLocationInput) { in.Points = -5 },
			expectedErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRegisterInput()
			tt.mutate(input)

			_, err := fx.service.RegisterLocation(ctx, input)

			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedErr))
		})
	}
}

func TestLocationService_RegisterLocation_RenderFails(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.qrcodeService.EXPECT().
		RenderLocationQR(mock.AnythingOfType("*entity.Location")).
		Return(nil, errors.New("payload exceeds QR capacity"))

	_, err := fx.service.RegisterLocation(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrQRRenderFailed))
}

func TestLocationService_GetLocation_NotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.locationRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrLocationNotFound)

	_, err := fx.service.GetLocation(ctx, id)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}

func TestLocationService_ListLocations_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locations := []*entity.Location{
		{ID: uuid.New(), Name: "Rose Square"},
		{ID: uuid.New(), Name: "Northern Forts"},
	}

	fx.locationRepo.EXPECT().FindAll(ctx).Return(locations, nil)

	result, err := fx.service.ListLocations(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestLocationService_GetLocationArtifact_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	id := uuid.New()
	artifact := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.locationRepo.EXPECT().GetArtifact(ctx, id).Return(artifact, nil)

	output, err := fx.service.GetLocationArtifact(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, "image/png", output.ContentType)
	assert.Equal(t, artifact, output.Data)
}

func TestLocationService_DeleteLocation_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().NewLocationRepository().Return(mockLocationRepo)
			mockLocationRepo.EXPECT().Delete(ctx, id).Return(nil)

			return fn(mockFactory)
		})

	fx.artifactStorage.EXPECT().
		Delete(ctx, "locations/"+id.String()+".png").
		Return(nil)

	err := fx.service.DeleteLocation(ctx, id)

	require.NoError(t, err)
}

func TestLocationService_DeleteLocation_NotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().NewLocationRepository().Return(mockLocationRepo)
			mockLocationRepo.EXPECT().Delete(ctx, id).Return(repository.ErrLocationNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeleteLocation(ctx, id)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}
