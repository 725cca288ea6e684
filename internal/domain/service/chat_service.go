package service

import (
	"context"

	"cityquest/internal/domain/entity"
)

// ChatService defines the interface for relaying user messages to the
// conversational assistant backend.
type ChatService interface {
	// SendMessage relays a prompt to the assistant and returns its reply.
	// A transport failure or a non-2xx backend response yields an error, never
	// a fabricated reply.
	SendMessage(ctx context.Context, prompt *entity.ChatPrompt) (*entity.ChatReply, error)
}
