package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cityquest/config"
	"cityquest/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *assistantClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		ChatBackend: &config.ChatBackendConfig{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		},
	}

	client, ok := NewAssistantClient(cfg, slog.Default()).(*assistantClient)
	require.True(t, ok)

	return client
}

func TestAssistantClient_SendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send-message/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req sendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "What can I see near the canal?", req.Message)
		assert.Nil(t, req.ThreadID) // New conversation serializes thread_id as null.
		require.NotNil(t, req.Latitude)
		assert.InDelta(t, 56.5047, *req.Latitude, 0.0001)

		json.NewEncoder(w).Encode(sendMessageResponse{
			Reply:    "The old canal promenade is a short walk away.",
			ThreadID: "thread-123",
		})
	})

	lat, lon := 56.5047, 21.0108
	reply, err := client.SendMessage(context.Background(), &entity.ChatPrompt{
		Message:   "What can I see near the canal?",
		Latitude:  &lat,
		Longitude: &lon,
	})
	require.NoError(t, err)
	assert.Equal(t, "The old canal promenade is a short walk away.", reply.Reply)
	assert.Equal(t, "thread-123", reply.ThreadID)
}

func TestAssistantClient_SendMessage_ContinuesThread(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ThreadID)
		assert.Equal(t, "thread-123", *req.ThreadID)

		json.NewEncoder(w).Encode(sendMessageResponse{
			Reply:    "It opens at nine.",
			ThreadID: "thread-123",
		})
	})

	reply, err := client.SendMessage(context.Background(), &entity.ChatPrompt{
		Message:  "When does it open?",
		ThreadID: "thread-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "thread-123", reply.ThreadID)
}

func TestAssistantClient_SendMessage_BackendError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"detail": "assistant overloaded"})
	})

	reply, err := client.SendMessage(context.Background(), &entity.ChatPrompt{Message: "hello"})
	assert.Nil(t, reply)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assistant overloaded")
	assert.Contains(t, err.Error(), "503")
}

func TestAssistantClient_SendMessage_ErrorReplyBody(t *testing.T) {
	// Some backend failures put the diagnostic in the reply field instead.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"reply": "something went wrong"})
	})

	_, err := client.SendMessage(context.Background(), &entity.ChatPrompt{Message: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "something went wrong")
}

func TestAssistantClient_SendMessage_NotConfigured(t *testing.T) {
	client, ok := NewAssistantClient(&config.Config{}, slog.Default()).(*assistantClient)
	require.True(t, ok)

	_, err := client.SendMessage(context.Background(), &entity.ChatPrompt{Message: "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
