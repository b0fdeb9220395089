package kmeans

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/pointgen/geometry"
	"github.com/hupe1980/pointgen/model"
)

var (
	// ErrNoCentroids is returned when a nearest-centroid query receives an
	// empty centroid set.
	ErrNoCentroids = errors.New("centroid set is empty")

	// ErrNoFiniteDistance is returned when no centroid has a comparable
	// (non-NaN) distance to the point.
	ErrNoFiniteDistance = errors.New("no centroid at a finite distance")
)

// NearestCentroid returns the index of the centroid closest to p.
//
// Ties resolve to the lowest index.
func NearestCentroid(p model.Point, centroids model.CentroidSet) (int, error) {
	if len(centroids) == 0 {
		return -1, ErrNoCentroids
	}

	bestCluster := -1
	minDist := math.Inf(1)

	for j, c := range centroids {
		d := geometry.CentroidDistance(p, c)
		if math.IsNaN(d) {
			continue
		}
		if bestCluster == -1 || d < minDist {
			minDist = d
			bestCluster = j
		}
	}

	if bestCluster == -1 {
		return -1, ErrNoFiniteDistance
	}

	return bestCluster, nil
}

// Average returns the arithmetic mean of values, or 0 for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values) / float64(len(values))
}

// Assign labels every point with its nearest centroid and returns how many
// labels changed. Points without a previous label count as changed.
//
// On error no point is relabeled.
func Assign(points model.Dataset, centroids model.CentroidSet) (int, error) {
	if len(centroids) == 0 {
		return 0, ErrNoCentroids
	}

	labels := make([]int, len(points))
	for i := range points {
		best, err := NearestCentroid(points[i], centroids)
		if err != nil {
			return 0, fmt.Errorf("point %d: %w", i, err)
		}
		labels[i] = best
	}

	changed := 0
	for i, best := range labels {
		if prev, ok := points[i].Assigned(); !ok || prev != best {
			points[i].Assign(best)
			changed++
		}
	}

	return changed, nil
}

// Update recomputes k centroids as the per-axis mean of their assigned
// points. Unassigned points and labels outside [0,k) are ignored.
//
// A cluster without points ends up at (0, 0) since Average of nothing is 0.
func Update(points model.Dataset, k int) model.CentroidSet {
	if k <= 0 {
		return nil
	}

	xs := make([][]float64, k)
	ys := make([][]float64, k)

	for _, p := range points {
		c, ok := p.Assigned()
		if !ok || c < 0 || c >= k {
			continue
		}
		xs[c] = append(xs[c], p.X)
		ys[c] = append(ys[c], p.Y)
	}

	centroids := make(model.CentroidSet, k)
	for j := range centroids {
		centroids[j] = model.Centroid{X: Average(xs[j]), Y: Average(ys[j])}
	}

	return centroids
}

// StepResult is the outcome of a single assign+update step.
type StepResult struct {
	// Centroids are the recomputed centroids.
	Centroids model.CentroidSet
	// Changed is the number of points whose label changed.
	Changed int
	// Sizes holds the number of points per cluster.
	Sizes []int
}

// Step performs one k-means iteration in place: points are relabeled against
// centroids and new centroids are computed from the labels.
func Step(points model.Dataset, centroids model.CentroidSet) (*StepResult, error) {
	changed, err := Assign(points, centroids)
	if err != nil {
		return nil, err
	}

	sizes := make([]int, len(centroids))
	for _, p := range points {
		if c, ok := p.Assigned(); ok {
			sizes[c]++
		}
	}

	return &StepResult{
		Centroids: Update(points, len(centroids)),
		Changed:   changed,
		Sizes:     sizes,
	}, nil
}

// Inertia returns the sum of squared distances from each labeled point to
// its centroid. Unlabeled points are skipped.
func Inertia(points model.Dataset, centroids model.CentroidSet) float64 {
	var sum float64
	for _, p := range points {
		c, ok := p.Assigned()
		if !ok || c < 0 || c >= len(centroids) {
			continue
		}
		d := geometry.CentroidDistance(p, centroids[c])
		sum += d * d
	}
	return sum
}
