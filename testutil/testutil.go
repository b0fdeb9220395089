package testutil

import (
	"math"
	"sync"

	"github.com/hupe1980/pointgen/geometry"
	"github.com/hupe1980/pointgen/model"
)

// Sequence is a scripted random.Source.
//
// Each stream (floats, ints, norms) replays its values in order and wraps
// around when exhausted. An empty stream yields zero. It is thread-safe.
type Sequence struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	norms  []float64

	fi, ii, ni int
}

// NewSequence creates an empty Sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// WithFloats sets the values returned by Float64.
func (s *Sequence) WithFloats(v ...float64) *Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floats = v
	s.fi = 0
	return s
}

// WithInts sets the values returned by Intn. Each value is reduced modulo n.
func (s *Sequence) WithInts(v ...int) *Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = v
	s.ii = 0
	return s
}

// WithNorms sets the values returned by NormFloat64.
func (s *Sequence) WithNorms(v ...float64) *Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.norms = v
	s.ni = 0
	return s
}

// Float64 implements random.Source.
func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

// Intn implements random.Source.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("testutil: invalid argument to Intn")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

// NormFloat64 implements random.Source.
func (s *Sequence) NormFloat64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.norms) == 0 {
		return 0
	}
	v := s.norms[s.ni%len(s.norms)]
	s.ni++
	return v
}

// Calls returns how many values were drawn from each stream.
func (s *Sequence) Calls() (floats, ints, norms int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fi, s.ii, s.ni
}

// NearestDistances returns, for every point, the distance to its nearest center.
func NearestDistances(points model.Dataset, centers []model.Centroid) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		best := math.Inf(1)
		for _, c := range centers {
			if d := geometry.CentroidDistance(p, c); d < best {
				best = d
			}
		}
		out[i] = best
	}
	return out
}

// MinPairwiseDistance returns the smallest distance between any two centers.
// It returns +Inf for fewer than two centers.
func MinPairwiseDistance(centers []model.Centroid) float64 {
	best := math.Inf(1)
	for i := range centers {
		for j := i + 1; j < len(centers); j++ {
			d := geometry.Distance(centers[i].X, centers[i].Y, centers[j].X, centers[j].Y)
			if d < best {
				best = d
			}
		}
	}
	return best
}

// Mean returns the centroid of the given points.
func Mean(points model.Dataset) model.Centroid {
	if len(points) == 0 {
		return model.Centroid{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return model.Centroid{X: sx / n, Y: sy / n}
}

// AllUnassigned reports whether no point carries a cluster label.
func AllUnassigned(points model.Dataset) bool {
	for _, p := range points {
		if p.Cluster != nil {
			return false
		}
	}
	return true
}

// AllFinite reports whether every coordinate is finite.
func AllFinite(points model.Dataset) bool {
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
