package minio

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointgen/blobstore"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Set MINIO_ENDPOINT (e.g. localhost:9000) to enable it.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set")
	}

	ctx := context.Background()

	store, err := Dial(ctx, Config{
		Endpoint:     endpoint,
		AccessKey:    envOr("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:    envOr("MINIO_SECRET_KEY", "minioadmin"),
		Bucket:       "test-pointgen",
		Prefix:       "test-prefix/",
		CreateBucket: true,
	})
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	data := []byte("hello minio world")
	require.NoError(t, store.Put(ctx, "blobs/test.snap", data))

	got, err := store.Get(ctx, "blobs/test.snap")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "blobs/")
	require.NoError(t, err)
	assert.Contains(t, names, "blobs/test.snap")

	require.NoError(t, store.Delete(ctx, "blobs/test.snap"))

	_, err = store.Get(ctx, "blobs/test.snap")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	// Deleting twice is not an error.
	require.NoError(t, store.Delete(ctx, "blobs/test.snap"))
}

func TestDial_InvalidEndpoint(t *testing.T) {
	_, err := Dial(context.Background(), Config{Endpoint: "http://bad endpoint"})
	assert.Error(t, err)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
