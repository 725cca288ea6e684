package service

import (
	"context"
)

// ArtifactStorage defines the interface for mirroring rendered QR artifacts to
// object storage. The database row remains the source of truth; the mirror
// exists so artifacts can be served or printed without touching the database.
type ArtifactStorage interface {
	// Put stores artifact bytes under the given key, overwriting any previous object.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Delete removes the object under the given key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying bucket handle.
	Close() error
}
