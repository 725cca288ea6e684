package service

import (
	"context"
)

// ExternalIdentity is the verified identity extracted from a provider token.
type ExternalIdentity struct {
	ProviderUserID string // The provider's stable user ID (e.g., Firebase UID).
	Email          string
	Name           string
}

// IdentityVerifier defines the interface for verifying external identity
// provider tokens (Firebase ID tokens from the mobile client).
type IdentityVerifier interface {
	// Verify checks the token signature and expiry and returns the identity it asserts.
	Verify(ctx context.Context, idToken string) (*ExternalIdentity, error)
}
