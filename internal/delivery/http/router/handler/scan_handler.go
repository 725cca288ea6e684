package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cityquest/internal/delivery/http/response"
	"cityquest/internal/domain/entity"
	"cityquest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ScanHandler holds dependencies for the scan interpreter endpoints.
type ScanHandler struct {
	uc     usecase.ScanUsecase
	logger *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler, injected by Fx.
func NewScanHandler(uc usecase.ScanUsecase, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{
		uc:     uc,
		logger: logger,
	}
}

type interpretScanRequest struct {
	Payload   string   `json:"payload" validate:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type scanProgressView struct {
	Level            int `json:"level"`
	Points           int `json:"points"`
	LocationsScanned int `json:"locations_scanned"`
}

type scanResultView struct {
	Outcome        entity.ScanOutcome `json:"outcome"`
	Location       *entity.Location   `json:"location,omitempty"`
	PointsAwarded  int                `json:"points_awarded"`
	AlreadyScanned bool               `json:"already_scanned"`
	DistanceMeters float64            `json:"distance_meters"`
	Profile        *scanProgressView  `json:"profile,omitempty"`
}

type scanRecordView struct {
	ID            uuid.UUID `json:"id"`
	LocationID    uuid.UUID `json:"location_id"`
	PointsAwarded int       `json:"points_awarded"`
	ScannedAt     time.Time `json:"scanned_at"`
}

func newScanResultView(result *entity.ScanResult) scanResultView {
	view := scanResultView{
		Outcome:        result.Outcome,
		Location:       result.Location,
		PointsAwarded:  result.PointsAwarded,
		AlreadyScanned: result.AlreadyScanned,
		DistanceMeters: result.DistanceMeters,
	}
	if result.ProfileAfterScan != nil {
		view.Profile = &scanProgressView{
			Level:            result.ProfileAfterScan.Level,
			Points:           result.ProfileAfterScan.Points,
			LocationsScanned: result.ProfileAfterScan.LocationsScanned,
		}
	}

	return view
}

// InterpretScan interprets one scanned QR payload for the authenticated user.
// Unrecognized and malformed payloads are regular outcomes, not errors.
func (h *ScanHandler) InterpretScan(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req interpretScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.InterpretScan(c.Request().Context(), &usecase.InterpretScanInput{
		UserID:    userID,
		Payload:   req.Payload,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newScanResultView(output.Result))
}

// GetScanHistory returns the authenticated user's ledger entries, newest first.
func (h *ScanHandler) GetScanHistory(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	records, err := h.uc.GetScanHistory(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]scanRecordView, 0, len(records))
	for _, record := range records {
		views = append(views, scanRecordView{
			ID:            record.ID,
			LocationID:    record.LocationID,
			PointsAwarded: record.PointsAwarded,
			ScannedAt:     record.ScannedAt,
		})
	}

	return response.Success(c, http.StatusOK, views)
}
