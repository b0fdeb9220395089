package testutil

import (
	"math"
	"testing"

	"github.com/hupe1980/pointgen/model"
	"github.com/hupe1980/pointgen/random"
	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	var _ random.Source = (*Sequence)(nil)

	s := NewSequence().WithFloats(0.1, 0.2).WithInts(5, 8).WithNorms(-1)

	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.2, s.Float64())
	assert.Equal(t, 0.1, s.Float64()) // wraps

	assert.Equal(t, 2, s.Intn(3)) // 5 % 3
	assert.Equal(t, 8, s.Intn(10))

	assert.Equal(t, -1.0, s.NormFloat64())

	f, i, n := s.Calls()
	assert.Equal(t, 3, f)
	assert.Equal(t, 2, i)
	assert.Equal(t, 1, n)
}

func TestSequenceEmpty(t *testing.T) {
	s := NewSequence()
	assert.Equal(t, 0.0, s.Float64())
	assert.Equal(t, 0, s.Intn(4))
	assert.Equal(t, 0.0, s.NormFloat64())
	assert.Panics(t, func() { s.Intn(0) })
}

func TestHelpers(t *testing.T) {
	centers := []model.Centroid{{X: 0, Y: 0}, {X: 10, Y: 0}}
	points := model.Dataset{model.NewPoint(1, 0), model.NewPoint(7, 0)}

	assert.Equal(t, []float64{1, 3}, NearestDistances(points, centers))
	assert.Equal(t, 10.0, MinPairwiseDistance(centers))
	assert.True(t, math.IsInf(MinPairwiseDistance(centers[:1]), 1))
	assert.Equal(t, model.Centroid{X: 4, Y: 0}, Mean(points))
	assert.Equal(t, model.Centroid{}, Mean(nil))
	assert.True(t, AllUnassigned(points))
	assert.True(t, AllFinite(points))

	points[0].Assign(1)
	assert.False(t, AllUnassigned(points))
	assert.False(t, AllFinite(model.Dataset{model.NewPoint(math.NaN(), 0)}))
}
