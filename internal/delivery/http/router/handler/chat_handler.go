package handler

import (
	"log/slog"
	"net/http"

	"cityquest/internal/delivery/http/response"
	"cityquest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler relays assistant chat messages.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

type sendMessageRequest struct {
	Message   string   `json:"message" validate:"required"`
	ThreadID  string   `json:"thread_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type chatReplyView struct {
	Reply    string `json:"reply"`
	ThreadID string `json:"thread_id"`
}

// SendMessage relays one user message to the assistant backend.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SendMessage(c.Request().Context(), &usecase.SendChatMessageInput{
		Message:   req.Message,
		ThreadID:  req.ThreadID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chatReplyView{
		Reply:    output.Reply,
		ThreadID: output.ThreadID,
	})
}
