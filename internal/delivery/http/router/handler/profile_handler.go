package handler

import (
	"log/slog"
	"net/http"

	"cityquest/internal/delivery/http/response"
	"cityquest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the explorer dashboard.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type profileView struct {
	UserID           uuid.UUID `json:"user_id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Level            int       `json:"level"`
	Points           int       `json:"points"`
	LocationsScanned int       `json:"locations_scanned"`
}

// GetProfile returns the authenticated user's identity and progress.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profileView{
		UserID:           output.User.ID,
		Email:            output.User.Email,
		Name:             output.User.Name,
		Level:            output.Profile.Level,
		Points:           output.Profile.Points,
		LocationsScanned: output.Profile.LocationsScanned,
	})
}
