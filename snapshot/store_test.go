package snapshot

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointgen/blobstore"
)

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	blobs := blobstore.NewMemoryStore()
	store := NewStore(blobs, WithCompression(CompressionZSTD))

	snap := sampleSnapshot(100)
	snap.ID = ""
	require.NoError(t, store.Save(ctx, snap))
	require.NotEmpty(t, snap.ID)

	names, err := blobs.List(ctx, "blobs/")
	require.NoError(t, err)
	assert.Equal(t, []string{"blobs/CURRENT", "blobs/" + snap.ID + ".snap"}, names)

	got, err := store.Load(ctx, "blobs")
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, snap.Points, got.Points)
}

func TestStore_Versions(t *testing.T) {
	ctx := context.Background()
	store := NewStore(blobstore.NewMemoryStore())

	for i := 1; i <= 3; i++ {
		snap := sampleSnapshot(10)
		snap.ID = fmt.Sprintf("%04d", i)
		snap.Amount = i
		require.NoError(t, store.Save(ctx, snap))
	}

	ids, err := store.Versions(ctx, "blobs")
	require.NoError(t, err)
	assert.Equal(t, []string{"0001", "0002", "0003"}, ids)

	current, err := store.Load(ctx, "blobs")
	require.NoError(t, err)
	assert.Equal(t, 3, current.Amount)

	old, err := store.LoadVersion(ctx, "blobs", "0001")
	require.NoError(t, err)
	assert.Equal(t, 1, old.Amount)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(blobstore.NewMemoryStore())

	for _, id := range []string{"0001", "0002"} {
		snap := sampleSnapshot(3)
		snap.ID = id
		require.NoError(t, store.Save(ctx, snap))
	}

	t.Run("NonCurrent", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "blobs", "0001"))
		id, err := store.Current(ctx, "blobs")
		require.NoError(t, err)
		assert.Equal(t, "0002", id)
	})

	t.Run("LastVersion", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "blobs", "0002"))
		_, err := store.Load(ctx, "blobs")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_DeleteCurrentRepoints(t *testing.T) {
	ctx := context.Background()
	store := NewStore(blobstore.NewMemoryStore())

	for _, id := range []string{"0001", "0002", "0003"} {
		snap := sampleSnapshot(3)
		snap.ID = id
		require.NoError(t, store.Save(ctx, snap))
	}

	require.NoError(t, store.Delete(ctx, "blobs", "0003"))

	id, err := store.Current(ctx, "blobs")
	require.NoError(t, err)
	assert.Equal(t, "0002", id)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewStore(blobstore.NewMemoryStore())

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.LoadVersion(ctx, "missing", "0001")
	assert.ErrorIs(t, err, ErrNotFound)

	ids, err := store.Versions(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStore_InvalidName(t *testing.T) {
	ctx := context.Background()
	store := NewStore(blobstore.NewMemoryStore())

	for _, name := range []string{"", "a/b", "..", `a\b`} {
		snap := sampleSnapshot(1)
		snap.Name = name
		assert.ErrorIs(t, store.Save(ctx, snap), ErrInvalidName, name)
	}
}

func TestStore_SaveAll(t *testing.T) {
	ctx := context.Background()
	store := NewStore(blobstore.NewMemoryStore(), WithConcurrency(2), WithCompression(CompressionLZ4))

	var snaps []*Snapshot
	for i := 0; i < 8; i++ {
		snap := sampleSnapshot(20)
		snap.Name = fmt.Sprintf("set-%d", i)
		snap.ID = ""
		snaps = append(snaps, snap)
	}

	require.NoError(t, store.SaveAll(ctx, snaps))

	for _, snap := range snaps {
		got, err := store.Load(ctx, snap.Name)
		require.NoError(t, err)
		assert.Equal(t, snap.ID, got.ID)
	}
}

func TestStore_SaveAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore(blobstore.NewMemoryStore())
	err := store.SaveAll(ctx, []*Snapshot{sampleSnapshot(1)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_LocalBackend(t *testing.T) {
	ctx := context.Background()
	store := NewStore(blobstore.NewLocalStore(t.TempDir()))

	snap := sampleSnapshot(10)
	require.NoError(t, store.Save(ctx, snap))

	got, err := store.Load(ctx, "blobs")
	require.NoError(t, err)
	assert.Equal(t, snap.Centers, got.Centers)
}
