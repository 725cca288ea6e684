package impl

import (
	"context"
	"testing"

	"cityquest/internal/domain/entity"
	domainerrors "cityquest/internal/domain/errors"
	mockService "cityquest/internal/mocks/service"
	"cityquest/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatServiceFixtures holds all test dependencies for chat service tests.
type chatServiceFixtures struct {
	service   usecase.ChatUsecase
	assistant *mockService.MockChatService
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	assistant := mockService.NewMockChatService(t)

	svc := NewChatService(ChatServiceParams{
		Assistant: assistant,
		Logger:    newDiscardLogger(),
	})

	return chatServiceFixtures{
		service:   svc,
		assistant: assistant,
	}
}

func TestChatService_SendMessage_NewConversation(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()

	fx.assistant.EXPECT().
		SendMessage(ctx, &entity.ChatPrompt{Message: "What should I visit today?"}).
		Return(&entity.ChatReply{Reply: "Try the Northern Forts.", ThreadID: "thread-1"}, nil)

	output, err := fx.service.SendMessage(ctx, &usecase.SendChatMessageInput{
		Message: "What should I visit today?",
	})

	require.NoError(t, err)
	assert.Equal(t, "Try the Northern Forts.", output.Reply)
	assert.Equal(t, "thread-1", output.ThreadID)
}

func TestChatService_SendMessage_ContinuesThread(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()
	lat, lon := 56.5110, 21.0138

	fx.assistant.EXPECT().
		SendMessage(ctx, &entity.ChatPrompt{
			Message:   "How far is it?",
			ThreadID:  "thread-1",
			Latitude:  &lat,
			Longitude: &lon,
		}).
		Return(&entity.ChatReply{Reply: "About two kilometers.", ThreadID: "thread-1"}, nil)

	output, err := fx.service.SendMessage(ctx, &usecase.SendChatMessageInput{
		Message:   "How far is it?",
		ThreadID:  "thread-1",
		Latitude:  &lat,
		Longitude: &lon,
	})

	require.NoError(t, err)
	assert.Equal(t, "thread-1", output.ThreadID)
}

func TestChatService_SendMessage_TrimsWhitespace(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()

	fx.assistant.EXPECT().
		SendMessage(ctx, &entity.ChatPrompt{Message: "hello"}).
		Return(&entity.ChatReply{Reply: "hi", ThreadID: "thread-2"}, nil)

	output, err := fx.service.SendMessage(ctx, &usecase.SendChatMessageInput{
		Message: "  hello  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "hi", output.Reply)
}

func TestChatService_SendMessage_EmptyMessage(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()

	_, err := fx.service.SendMessage(ctx, &usecase.SendChatMessageInput{Message: "   "})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChatMessageEmpty))
}

func TestChatService_SendMessage_BackendUnavailable(t *testing.T) {
	fx := createTestChatService(t)

	ctx := context.Background()

	fx.assistant.EXPECT().
		SendMessage(ctx, &entity.ChatPrompt{Message: "hello"}).
		Return(nil, errors.New("assistant backend responded with status 503"))

	_, err := fx.service.SendMessage(ctx, &usecase.SendChatMessageInput{Message: "hello"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChatBackendUnavailable))
}
