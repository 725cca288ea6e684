package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cityquest/internal/delivery/context"
	"cityquest/internal/domain/entity"
	domainerrors "cityquest/internal/domain/errors"
	"cityquest/internal/domain/service"
	"cityquest/internal/usecase"

	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface. It validates messages and
// relays them to the assistant backend; conversation state lives backend-side,
// keyed by thread ID.
type chatService struct {
	assistant service.ChatService
	logger    *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	Assistant service.ChatService
	Logger    *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		assistant: params.Assistant,
		logger:    params.Logger,
	}
}

// SendMessage relays one user message to the assistant backend and returns the
// reply with the thread ID the client should echo next time.
func (srv *chatService) SendMessage(ctx context.Context, input *usecase.SendChatMessageInput) (*usecase.SendChatMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrChatMessageEmpty.WrapMessage("message must not be empty")
	}

	prompt := &entity.ChatPrompt{
		Message:   message,
		ThreadID:  input.ThreadID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}

	reply, err := srv.assistant.SendMessage(ctx, prompt)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Assistant backend call failed",
			slog.String("threadID", input.ThreadID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrChatBackendUnavailable.WrapMessage(err.Error())
	}

	return &usecase.SendChatMessageOutput{
		Reply:    reply.Reply,
		ThreadID: reply.ThreadID,
	}, nil
}
