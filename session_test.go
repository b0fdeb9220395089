package pointgen

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pointgen/blobstore"
	"github.com/hupe1980/pointgen/model"
	"github.com/hupe1980/pointgen/snapshot"
	"github.com/hupe1980/pointgen/testutil"
)

func TestSession(t *testing.T) {
	ctx := context.Background()
	gen := New()

	res := &Result{Request: Request{Layout: LayoutRandom, Amount: 4}, Points: fourPoints()}
	sess := gen.NewSession(res, model.CentroidSet{{X: 0, Y: 0}, {X: 10, Y: 10}})

	assert.Equal(t, uint64(0), sess.Moved())

	first, err := sess.Step(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, first.Changed)
	assert.Equal(t, uint64(4), sess.Moved())

	second, err := sess.Step(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Changed)
	assert.Equal(t, uint64(0), sess.Moved())

	assert.Equal(t, 2, sess.History().Len())
	assert.Equal(t, model.CentroidSet{{X: 0.5, Y: 0}, {X: 10.5, Y: 10}}, sess.Centroids())

	// The result's points stay unlabeled.
	assert.True(t, testutil.AllUnassigned(res.Points))
	assert.False(t, testutil.AllUnassigned(sess.Points()))

	snap := sess.Snapshot("pairs")
	assert.Equal(t, "pairs", snap.Name)
	assert.Equal(t, "random", snap.Layout)
	require.Len(t, snap.CentroidSteps, 3)
	assert.Equal(t, model.CentroidSet{{X: 0, Y: 0}, {X: 10, Y: 10}}, snap.CentroidSteps[0])
}

func TestSession_StepError(t *testing.T) {
	res := &Result{Points: fourPoints()}
	sess := New().NewSession(res, nil)

	_, err := sess.Step(context.Background())
	assert.ErrorIs(t, err, ErrNoCentroids)
	assert.Equal(t, 0, sess.History().Len())
}

func TestSession_StepNonFinitePointKeepsState(t *testing.T) {
	points := model.Dataset{model.NewPoint(0, 0), model.NewPoint(math.NaN(), 0), model.NewPoint(5, 5)}
	res := &Result{Points: points}
	sess := New().NewSession(res, model.CentroidSet{{X: 0, Y: 0}, {X: 5, Y: 5}})

	_, err := sess.Step(context.Background())
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 0, sess.History().Len())
	assert.True(t, testutil.AllUnassigned(sess.Points()))
	assert.Equal(t, model.CentroidSet{{X: 0, Y: 0}, {X: 5, Y: 5}}, sess.Centroids())
}

func TestSaveAndRestoreRequest(t *testing.T) {
	ctx := context.Background()
	gen := New(WithSeed(11))
	store := snapshot.NewStore(blobstore.NewMemoryStore(), snapshot.WithCompression(snapshot.CompressionLZ4))

	req := Request{Layout: LayoutCircular, Amount: 80, Circles: 3, Radius: 6}
	res, err := gen.Generate(ctx, req)
	require.NoError(t, err)

	snap := res.Snapshot("disks")
	require.NoError(t, gen.Save(ctx, store, snap))

	loaded, err := store.Load(ctx, "disks")
	require.NoError(t, err)
	assert.Equal(t, res.Points, loaded.Points)
	assert.Equal(t, res.Centers, loaded.Centers)

	restored, err := RequestFromSnapshot(loaded)
	require.NoError(t, err)
	assert.Equal(t, req, restored)
}
