package storage

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStore(t *testing.T, prefix string) *blobStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	return &blobStore{
		bucket:    bucket,
		keyPrefix: prefix,
		logger:    slog.Default(),
	}
}

func TestBlobStore_PutAndDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t, "")

	data := []byte{0x89, 0x50, 0x4E, 0x47}
	require.NoError(t, store.Put(ctx, "locations/abc.png", data, "image/png"))

	got, err := store.bucket.ReadAll(ctx, "locations/abc.png")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, store.Delete(ctx, "locations/abc.png"))

	exists, err := store.bucket.Exists(ctx, "locations/abc.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStore_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t, "")

	require.NoError(t, store.Put(ctx, "k", []byte("old"), "image/png"))
	require.NoError(t, store.Put(ctx, "k", []byte("new"), "image/png"))

	got, err := store.bucket.ReadAll(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestBlobStore_DeleteMissingKey(t *testing.T) {
	store := newMemStore(t, "")

	// Deleting a key that was never written must not fail.
	assert.NoError(t, store.Delete(context.Background(), "never-written"))
}

func TestBlobStore_KeyPrefix(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t, "qr")

	require.NoError(t, store.Put(ctx, "abc.png", []byte("data"), "image/png"))

	exists, err := store.bucket.Exists(ctx, "qr/abc.png")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNoopStore(t *testing.T) {
	store := &noopStore{logger: slog.Default()}

	assert.NoError(t, store.Put(context.Background(), "k", []byte("data"), "image/png"))
	assert.NoError(t, store.Delete(context.Background(), "k"))
	assert.NoError(t, store.Close())
}
