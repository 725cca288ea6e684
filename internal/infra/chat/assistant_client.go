// Package chat implements the ChatService by relaying messages to the
// conversational assistant backend over HTTP.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cityquest/config"
	"cityquest/internal/domain/entity"
	"cityquest/internal/domain/service"

	"github.com/pkg/errors"
)

const sendMessagePath = "/send-message/"

// maxErrorBodySize bounds how much of an error response is read for diagnostics.
const maxErrorBodySize = 8 << 10

type assistantClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// sendMessageRequest is the wire format the assistant backend expects.
// ThreadID is a pointer so a new conversation serializes as JSON null.
type sendMessageRequest struct {
	Message   string   `json:"message"`
	ThreadID  *string  `json:"thread_id"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// sendMessageResponse is the assistant backend's success payload.
type sendMessageResponse struct {
	Reply    string `json:"reply"`
	ThreadID string `json:"thread_id"`
}

// errorResponse covers both error shapes the backend emits.
type errorResponse struct {
	Detail string `json:"detail"`
	Reply  string `json:"reply"`
}

// NewAssistantClient creates a ChatService backed by the configured assistant backend.
func NewAssistantClient(cfg *config.Config, logger *slog.Logger) service.ChatService {
	timeout := 30 * time.Second
	baseURL := ""
	if cfg.ChatBackend != nil {
		baseURL = strings.TrimRight(cfg.ChatBackend.BaseURL, "/")
		if cfg.ChatBackend.Timeout > 0 {
			timeout = cfg.ChatBackend.Timeout
		}
	}

	return &assistantClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// SendMessage relays a prompt to the assistant and returns its reply.
func (c *assistantClient) SendMessage(ctx context.Context, prompt *entity.ChatPrompt) (*entity.ChatReply, error) {
	if c.baseURL == "" {
		return nil, errors.New("chat backend is not configured")
	}

	reqBody := sendMessageRequest{
		Message:   prompt.Message,
		Latitude:  prompt.Latitude,
		Longitude: prompt.Longitude,
	}
	if prompt.ThreadID != "" {
		threadID := prompt.ThreadID
		reqBody.ThreadID = &threadID
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendMessagePath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "chat backend request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.backendError(resp)
	}

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to decode chat backend response")
	}

	return &entity.ChatReply{
		Reply:    result.Reply,
		ThreadID: result.ThreadID,
	}, nil
}

// backendError extracts whatever diagnostic the backend put in its error body.
func (c *assistantClient) backendError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	var errBody errorResponse
	detail := ""
	if err := json.Unmarshal(raw, &errBody); err == nil {
		if errBody.Detail != "" {
			detail = errBody.Detail
		} else if errBody.Reply != "" {
			detail = errBody.Reply
		}
	}

	c.logger.Warn("chat backend returned error",
		slog.Int("status", resp.StatusCode),
		slog.String("detail", detail),
	)

	if detail != "" {
		return errors.Errorf("chat backend returned status %d: %s", resp.StatusCode, detail)
	}

	return errors.Errorf("chat backend returned status %d", resp.StatusCode)
}
