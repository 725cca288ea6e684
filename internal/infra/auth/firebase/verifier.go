// Package firebase verifies Firebase ID tokens issued to the mobile client.
package firebase

import (
	"context"
	"fmt"
	"log/slog"

	"cityquest/config"
	"cityquest/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

type verifier struct {
	client *firebaseauth.Client
	logger *slog.Logger
}

// NewVerifier creates an IdentityVerifier backed by the Firebase Admin SDK.
func NewVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	var opts []option.ClientOption
	if cfg.Firebase != nil && cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	var fbConfig *firebase.Config
	if cfg.Firebase != nil && cfg.Firebase.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	return &verifier{
		client: client,
		logger: logger,
	}, nil
}

// Verify checks the token signature and expiry and returns the identity it asserts.
func (v *verifier) Verify(ctx context.Context, idToken string) (*service.ExternalIdentity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Warn("Firebase ID token rejected", "error", err)

		return nil, fmt.Errorf("invalid ID token: %w", err)
	}

	identity := &service.ExternalIdentity{
		ProviderUserID: token.UID,
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}

	return identity, nil
}
