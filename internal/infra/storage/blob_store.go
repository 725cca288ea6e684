// Package storage mirrors rendered QR artifacts to object storage via the
// Go CDK blob portability layer, so the bucket backend is a config choice.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"cityquest/config"
	"cityquest/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Register the bucket drivers selectable through the bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobStore struct {
	bucket    *blob.Bucket
	keyPrefix string
	logger    *slog.Logger
}

// noopStore is used when no bucket is configured. The database row holds the
// artifact either way, so mirroring is strictly optional.
type noopStore struct {
	logger *slog.Logger
}

func (s *noopStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	s.logger.Debug("[ArtifactStore] mirroring disabled, skipping put", slog.String("key", key))

	return nil
}

func (s *noopStore) Delete(ctx context.Context, key string) error {
	return nil
}

func (s *noopStore) Close() error {
	return nil
}

// StoreParams holds dependencies for ArtifactStorage, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewArtifactStorage opens the configured bucket, or returns a no-op store
// when no bucket URL is configured.
func NewArtifactStorage(params StoreParams) (service.ArtifactStorage, error) {
	cfg := params.Config.ArtifactStore
	logger := params.Logger

	if cfg == nil || cfg.BucketURL == "" {
		logger.Info("Artifact store not configured, using no-op store")

		return &noopStore{logger: logger}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	logger.Info("Artifact store initialized", slog.String("bucket", cfg.BucketURL))

	store := &blobStore{
		bucket:    bucket,
		keyPrefix: strings.Trim(cfg.KeyPrefix, "/"),
		logger:    logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing artifact store")

			return store.Close()
		},
	})

	return store, nil
}

// Put stores artifact bytes under the given key, overwriting any previous object.
func (s *blobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, s.fullKey(key), data, opts); err != nil {
		return errors.Wrapf(err, "failed to write artifact %s", key)
	}

	return nil
}

// Delete removes the object under the given key. Deleting a missing key is not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, s.fullKey(key))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete artifact %s", key)
	}

	return nil
}

// Close releases the underlying bucket handle.
func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *blobStore) fullKey(key string) string {
	if s.keyPrefix == "" {
		return key
	}

	return s.keyPrefix + "/" + key
}
