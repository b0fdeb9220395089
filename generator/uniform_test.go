package generator

import (
	"testing"

	"github.com/hupe1980/pointgen/random"
	"github.com/hupe1980/pointgen/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom(t *testing.T) {
	rng := random.NewRNG(4711)

	for _, n := range []int{1, 10, 250} {
		data, err := Random(rng, n)
		require.NoError(t, err)
		require.Len(t, data, n)
		assert.True(t, testutil.AllUnassigned(data))

		for _, p := range data {
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.Less(t, p.X, float64(n))
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.Less(t, p.Y, float64(n))
		}
	}
}

func TestRandom_Floors(t *testing.T) {
	src := testutil.NewSequence().WithFloats(0.999, 0.5)

	data, err := Random(src, 10)
	require.NoError(t, err)
	assert.Equal(t, 9.0, data[0].X)
	assert.Equal(t, 5.0, data[0].Y)
}

func TestRandom_InvalidAmount(t *testing.T) {
	_, err := Random(random.NewRNG(1), 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "dataPointAmount", argErr.Name)
}

func TestCentroids(t *testing.T) {
	cs, err := Centroids(random.NewRNG(4711), 5, 100)
	require.NoError(t, err)
	require.Len(t, cs, 5)

	for _, c := range cs {
		assert.GreaterOrEqual(t, c.X, 0.0)
		assert.Less(t, c.X, 100.0)
		assert.GreaterOrEqual(t, c.Y, 0.0)
		assert.Less(t, c.Y, 100.0)
	}

	_, err = Centroids(random.NewRNG(1), 0, 100)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Centroids(random.NewRNG(1), 2, -5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
