package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreLifecycle(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "eye/a.snap", []byte("first")))
	require.NoError(t, store.Put(ctx, "eye/b.snap", []byte("second")))
	require.NoError(t, store.Put(ctx, "grid/a.snap", []byte("third")))

	data, err := store.Get(ctx, "eye/a.snap")
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	// Overwrite.
	require.NoError(t, store.Put(ctx, "eye/a.snap", []byte("replaced")))
	data, err = store.Get(ctx, "eye/a.snap")
	require.NoError(t, err)
	assert.Equal(t, "replaced", string(data))

	names, err := store.List(ctx, "eye/")
	require.NoError(t, err)
	assert.Equal(t, []string{"eye/a.snap", "eye/b.snap"}, names)

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, names, 3)

	require.NoError(t, store.Delete(ctx, "eye/a.snap"))
	require.NoError(t, store.Delete(ctx, "eye/a.snap")) // idempotent

	_, err = store.Get(ctx, "eye/a.snap")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	testStoreLifecycle(t, NewMemoryStore())
}

func TestMemoryStore_Copies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	buf := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", buf))
	buf[0] = 'x'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[0] = 'y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	testStoreLifecycle(t, NewLocalStore(dir))

	// Blobs live at their slash path below root; no temp files linger.
	_, err := os.Stat(filepath.Join(dir, "grid", "a.snap"))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "eye"))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-")
	}
}

func TestLocalStore_ListMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "nope"))
	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStores_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, store := range []BlobStore{NewMemoryStore(), NewLocalStore(t.TempDir())} {
		assert.ErrorIs(t, store.Put(ctx, "k", []byte("v")), context.Canceled)
		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestThrottledStore(t *testing.T) {
	testStoreLifecycle(t, NewThrottledStore(NewMemoryStore(), 0))
	testStoreLifecycle(t, NewThrottledStore(NewMemoryStore(), 1<<20))
}

func TestThrottledStore_Limits(t *testing.T) {
	ctx := context.Background()
	store := NewThrottledStore(NewMemoryStore(), 100)

	// The first 100 bytes drain the burst, the next 50 wait ~0.5s.
	start := time.Now()
	require.NoError(t, store.Put(ctx, "a", make([]byte, 100)))
	require.NoError(t, store.Put(ctx, "b", make([]byte, 50)))
	assert.GreaterOrEqual(t, time.Since(start), 400*time.Millisecond)
}

func TestThrottledStore_Canceled(t *testing.T) {
	store := NewThrottledStore(NewMemoryStore(), 10)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// 1000 bytes at 10 B/s would take far longer than the deadline.
	err := store.Put(ctx, "big", make([]byte, 1000))
	assert.Error(t, err)
}
