package impl

import (
	"context"
	"testing"
	"time"

	"cityquest/internal/domain/entity"
	"cityquest/internal/domain/repository"
	"cityquest/internal/domain/service"
	mockRepo "cityquest/internal/mocks/repository"
	mockService "cityquest/internal/mocks/service"
	"cityquest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// scanServiceFixtures holds all test dependencies for scan service tests.
type scanServiceFixtures struct {
	service        usecase.ScanUsecase
	txManager      *mockRepo.MockTransactionManager
	locationRepo   *mockRepo.MockLocationRepository
	scanRepo       *mockRepo.MockScanRepository
	qrcodeService  *mockService.MockQRCodeService
	eventPublisher *mockService.MockEventPublisher
}

func createTestScanService(t *testing.T) scanServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	scanRepo := mockRepo.NewMockScanRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	eventPublisher := mockService.NewMockEventPublisher(t)

	svc := NewScanService(ScanServiceParams{
		TxManager:      txManager,
		LocationRepo:   locationRepo,
		ScanRepo:       scanRepo,
		QRCodeService:  qrcodeService,
		EventPublisher: eventPublisher,
		Config:         newTestConfig(0),
		Logger:         newDiscardLogger(),
	})

	return scanServiceFixtures{
		service:        svc,
		txManager:      txManager,
		locationRepo:   locationRepo,
		scanRepo:       scanRepo,
		qrcodeService:  qrcodeService,
		eventPublisher: eventPublisher,
	}
}

func testScanLocation() *entity.Location {
	return &entity.Location{
		ID:        uuid.New(),
		Name:      "Rose Square",
		Address:   "Liela iela 1, Liepaja",
		Latitude:  56.5110,
		Longitude: 21.0138,
		Points:    10,
	}
}

// payloadForLocation builds the payload a genuine artifact for the location
// would decode to.
func payloadForLocation(location *entity.Location) *service.LocationPayload {
	return &service.LocationPayload{
		ID:        location.ID.String(),
		Name:      location.Name,
		Address:   location.Address,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Points:    location.Points,
	}
}

// expectRewardTransaction wires the transaction so the scan is recorded and
// the profile credited.
func expectRewardTransaction(t *testing.T, fx scanServiceFixtures, ctx context.Context, user *entity.User, scanCreateErr error) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockScanRepo := mockRepo.NewMockScanRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewScanRepository().Return(mockScanRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockScanRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ScanRecord")).
				Return(scanCreateErr)
			if scanCreateErr == nil {
				mockUserRepo.EXPECT().
					UpdateProfile(ctx, mock.AnythingOfType("*entity.ExplorerProfile")).
					Return(nil)
			}

			return fn(mockFactory)
		})
}

func TestScanService_InterpretScan_MatchedFirstScan(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	location := testScanLocation()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Email:   "explorer@example.com",
		Profile: &entity.ExplorerProfile{UserID: userID, Level: 1, Points: 95, LocationsScanned: 3},
	}

	fx.qrcodeService.EXPECT().
		DecodeLocationPayload("payload").
		Return(payloadForLocation(location), nil)
	fx.locationRepo.EXPECT().FindByID(ctx, location.ID).Return(location, nil)
	expectRewardTransaction(t, fx, ctx, user, nil)
	fx.eventPublisher.EXPECT().
		PublishScanEvent(ctx, mock.AnythingOfType("*service.ScanEvent")).
		Return(nil)

	output, err := fx.service.InterpretScan(ctx, &usecase.InterpretScanInput{
		UserID:  userID,
		Payload: "payload",
	})

	require.NoError(t, err)
	result := output.Result
	assert.Equal(t, entity.ScanOutcomeMatched, result.Outcome)
	assert.False(t, result.AlreadyScanned)
	assert.Equal(t, 10, result.PointsAwarded)
	// 95 + 10 points crosses the default 100-point level threshold.
	assert.Equal(t, 105, result.ProfileAfterScan.Points)
	assert.Equal(t, 2, result.ProfileAfterScan.Level)
	assert.Equal(t, 4, result.ProfileAfterScan.LocationsScanned)
	assert.Equal(t, float64(-1), result.DistanceMeters)
}

func TestScanService_InterpretScan_RepeatScanAwardsNothing(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	location := testScanLocation()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Email:   "explorer@example.com",
		Profile: &entity.ExplorerProfile{UserID: userID, Level: 2, Points: 105, LocationsScanned: 4},
	}

	fx.qrcodeService.EXPECT().
		DecodeLocationPayload("payload").
		Return(payloadForLocation(location), nil)
	fx.locationRepo.EXPECT().FindByID(ctx, location.ID).Return(location, nil)
	expectRewardTransaction(t, fx, ctx, user, repository.ErrDuplicateScanRecord)
	fx.eventPublisher.EXPECT().
		PublishScanEvent(ctx, mock.AnythingOfType("*service.ScanEvent")).
		Return(nil)

	output, err := fx.service.InterpretScan(ctx, &usecase.InterpretScanInput{
		UserID:  userID,
		Payload: "payload",
	})

	require.NoError(t, err)
	result := output.Result
	assert.Equal(t, entity.ScanOutcomeMatched, result.Outcome)
	assert.True(t, result.AlreadyScanned)
	assert.Equal(t, 0, result.PointsAwarded)
	assert.Equal(t, 105, result.ProfileAfterScan.Points)
}

func TestScanService_InterpretScan_LegacyPayloadFallsBackToContentMatch(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	location := testScanLocation()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Profile: &entity.ExplorerProfile{UserID: userID, Level: 1},
	}

	// Legacy artifacts carry no location ID.
	legacy := payloadForLocation(location)
	legacy.ID = ""
	fx.qrcodeService.EXPECT().
		DecodeLocationPayload("legacy-payload").
		Return(legacy, nil)
	fx.locationRepo.EXPECT().
		FindByPayload(ctx, location.Name, location.Latitude, location.Longitude).
		Return(location, nil)
	expectRewardTransaction(t, fx, ctx, user, nil)
	fx.eventPublisher.EXPECT().
		PublishScanEvent(ctx, mock.AnythingOfType("*service.ScanEvent")).
		Return(nil)

	output, err := fx.service.InterpretScan(ctx, &usecase.InterpretScanInput{
		UserID:  userID,
		Payload: "legacy-payload",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ScanOutcomeMatched, output.Result.Outcome)
	assert.Equal(t, 10, output.Result.PointsAwarded)
}

func TestScanService_InterpretScan_InvalidPayload(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()

	fx.qrcodeService.EXPECT().
		DecodeLocationPayload("not-json").
		Return(nil, errors.New("failed to decode payload"))

	output, err := fx.service.InterpretScan(ctx, &usecase.InterpretScanInput{
		UserID:  uuid.New(),
		Payload: "not-json",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ScanOutcomeInvalid, output.Result.Outcome)
	assert.Nil(t, output.Result.Location)
	assert.Equal(t, float64(-1), output.Result.DistanceMeters)
}

func TestScanService_InterpretScan_UnknownLocation(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()

	fx.qrcodeService.EXPECT().
		DecodeLocationPayload("payload").
		Return(&service.LocationPayload{Name: "Ghost Pier", Latitude: 1, Longitude: 2}, nil)
	fx.locationRepo.EXPECT().
		FindByPayload(ctx, "Ghost Pier", float64(1), float64(2)).
		Return(nil, repository.ErrLocationNotFound)

	output, err := fx.service.InterpretScan(ctx, &usecase.InterpretScanInput{
		UserID:  uuid.New(),
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ScanOutcomeUnknown, output.Result.Outcome)
	assert.Nil(t, output.Result.Location)
}

func TestScanService_InterpretScan_StaleIDFallsBackToContentMatch(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	location := testScanLocation()
	staleID := uuid.New()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Profile: &entity.ExplorerProfile{UserID: userID, Level: 1},
	}

	stale := payloadForLocation(location)
	stale.ID = staleID.String()
	fx.qrcodeService.EXPECT().
		DecodeLocationPayload("payload").
		Return(stale, nil)
	fx.locationRepo.EXPECT().FindByID(ctx, staleID).Return(nil, repository.ErrLocationNotFound)
	fx.locationRepo.EXPECT().
		FindByPayload(ctx, location.Name, location.Latitude, location.Longitude).
		Return(location, nil)
	expectRewardTransaction(t, fx, ctx, user, nil)
	fx.eventPublisher.EXPECT().
		PublishScanEvent(ctx, mock.AnythingOfType("*service.ScanEvent")).
		Return(nil)

	output, err := fx.service.InterpretScan(ctx, &usecase.InterpretScanInput{
		UserID:  userID,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ScanOutcomeMatched, output.Result.Outcome)
}

func TestScanService_InterpretScan_ForgedContentUnderRealID(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	location := testScanLocation()

	// The payload names a real location ID but carries fabricated content.
	forged := &service.LocationPayload{
		ID:        location.ID.String(),
		Name:      "Totally Different Place",
		Latitude:  0,
		Longitude: 0,
		Points:    9999,
	}
	fx.qrcodeService.EXPECT().
		DecodeLocationPayload("forged-payload").
		Return(forged, nil)
	fx.locationRepo.EXPECT().FindByID(ctx, location.ID).Return(location, nil)
	fx.locationRepo.EXPECT().
		FindByPayload(ctx, forged.Name, forged.Latitude, forged.Longitude).
		Return(nil, repository.ErrLocationNotFound)

	output, err := fx.service.InterpretScan(ctx, &usecase.InterpretScanInput{
		UserID:  uuid.New(),
		Payload: "forged-payload",
	})

	// No reward transaction may run for content that does not equal the record.
	require.NoError(t, err)
	assert.Equal(t, entity.ScanOutcomeUnknown, output.Result.Outcome)
	assert.Nil(t, output.Result.Location)
	assert.Equal(t, 0, output.Result.PointsAwarded)
}

func TestScanService_InterpretScan_ContentMatchVerifiesAllFields(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	location := testScanLocation()

	tests := []struct {
		name   string
		mutate func(*service.LocationPayload)
	}{
		{
			name:   "address differs",
			mutate: func(p *service.LocationPayload) { p.Address = "Kuršu iela 9, Liepaja" },
		},
		{
			name:   "points differ",
			mutate: func(p *service.LocationPayload) { p.Points = 500 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := payloadForLocation(location)
			payload.ID = ""
			tt.mutate(payload)

			fx.qrcodeService.EXPECT().
				DecodeLocationPayload("payload").
				Return(payload, nil).
				Once()
			// Name and coordinates still match a registered location, but the
			// remaining payload fields disagree with the stored record.
			fx.locationRepo.EXPECT().
				FindByPayload(ctx, payload.Name, payload.Latitude, payload.Longitude).
				Return(location, nil).
				Once()

			output, err := fx.service.InterpretScan(ctx, &usecase.InterpretScanInput{
				UserID:  uuid.New(),
				Payload: "payload",
			})

			require.NoError(t, err)
			assert.Equal(t, entity.ScanOutcomeUnknown, output.Result.Outcome)
		})
	}
}

func TestScanService_InterpretScan_DistanceHint(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	location := testScanLocation()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Profile: &entity.ExplorerProfile{UserID: userID, Level: 1},
	}

	fx.qrcodeService.EXPECT().
		DecodeLocationPayload("payload").
		Return(payloadForLocation(location), nil)
	fx.locationRepo.EXPECT().FindByID(ctx, location.ID).Return(location, nil)
	expectRewardTransaction(t, fx, ctx, user, nil)
	fx.eventPublisher.EXPECT().
		PublishScanEvent(ctx, mock.AnythingOfType("*service.ScanEvent")).
		Return(nil)

	// Scanner standing roughly a kilometer north of the location.
	lat := location.Latitude + 0.009
	lon := location.Longitude

	output, err := fx.service.InterpretScan(ctx, &usecase.InterpretScanInput{
		UserID:    userID,
		Payload:   "payload",
		Latitude:  &lat,
		Longitude: &lon,
	})

	require.NoError(t, err)
	assert.InDelta(t, 1000, output.Result.DistanceMeters, 50)
}

func TestScanService_InterpretScan_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	location := testScanLocation()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Profile: &entity.ExplorerProfile{UserID: userID, Level: 1},
	}

	fx.qrcodeService.EXPECT().
		DecodeLocationPayload("payload").
		Return(payloadForLocation(location), nil)
	fx.locationRepo.EXPECT().FindByID(ctx, location.ID).Return(location, nil)
	expectRewardTransaction(t, fx, ctx, user, nil)
	fx.eventPublisher.EXPECT().
		PublishScanEvent(ctx, mock.AnythingOfType("*service.ScanEvent")).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.InterpretScan(ctx, &usecase.InterpretScanInput{
		UserID:  userID,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ScanOutcomeMatched, output.Result.Outcome)
}

func TestScanService_GetScanHistory_Success(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()
	records := []*entity.ScanRecord{
		{ID: uuid.New(), UserID: userID, LocationID: uuid.New(), PointsAwarded: 10, ScannedAt: time.Now()},
		{ID: uuid.New(), UserID: userID, LocationID: uuid.New(), PointsAwarded: 5, ScannedAt: time.Now().Add(-time.Hour)},
	}

	fx.scanRepo.EXPECT().FindByUser(ctx, userID).Return(records, nil)

	result, err := fx.service.GetScanHistory(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
