// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// ChatReply is the assistant's answer to a relayed chat message.
// ThreadID identifies the backend conversation so follow-up messages keep
// their context; the client echoes it back on the next message.
type ChatReply struct {
	Reply    string // The assistant's answer text.
	ThreadID string // Conversation identifier assigned by the chat backend.
}

// ChatPrompt is one outgoing user message, optionally anchored to the
// sender's current position so the assistant can answer "near me" questions.
type ChatPrompt struct {
	Message   string   // The user's message text.
	ThreadID  string   // Existing conversation to continue, empty to start a new one.
	Latitude  *float64 // Sender latitude in decimal degrees, nil when the client withheld position.
	Longitude *float64 // Sender longitude in decimal degrees, nil when the client withheld position.
}
