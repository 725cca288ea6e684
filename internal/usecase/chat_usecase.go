package usecase

import (
	"context"
)

// SendChatMessageInput carries one outgoing user message for the assistant.
type SendChatMessageInput struct {
	Message   string
	ThreadID  string
	Latitude  *float64
	Longitude *float64
}

// SendChatMessageOutput returns the assistant's reply and the conversation
// identifier the client should echo on its next message.
type SendChatMessageOutput struct {
	Reply    string
	ThreadID string
}

// ChatUsecase defines the interface for the assistant chat proxy.
type ChatUsecase interface {
	// SendMessage validates and relays a message to the assistant backend.
	SendMessage(ctx context.Context, input *SendChatMessageInput) (*SendChatMessageOutput, error)
}
