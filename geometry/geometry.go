package geometry

import (
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/pointgen/model"
	"github.com/hupe1980/pointgen/random"
)

// JitterDivisor scales the jitter range: values are perturbed by an integer
// in [0, dataPointAmount/JitterDivisor).
const JitterDivisor = 50

// Distance returns the Euclidean distance between (ax, ay) and (bx, by).
func Distance(ax, ay, bx, by float64) float64 {
	return floats.Distance([]float64{ax, ay}, []float64{bx, by}, 2)
}

// EuclideanDistance returns the Euclidean distance between two points.
func EuclideanDistance(a, b model.Point) float64 {
	return Distance(a.X, a.Y, b.X, b.Y)
}

// CentroidDistance returns the Euclidean distance from p to c.
func CentroidDistance(p model.Point, c model.Centroid) float64 {
	return Distance(p.X, p.Y, c.X, c.Y)
}

// AddJitter returns value plus a uniform integer drawn from
// [0, dataPointAmount/JitterDivisor).
//
// For dataPointAmount < JitterDivisor the range is empty and value is
// returned unchanged without consuming randomness.
func AddJitter(src random.Source, value float64, dataPointAmount int) float64 {
	span := dataPointAmount / JitterDivisor
	if span <= 0 {
		return value
	}
	return value + float64(src.Intn(span))
}

// IsValidCenter reports whether c keeps at least minDistance to every
// center in centers. It is vacuously true for an empty slice.
func IsValidCenter(c model.Centroid, centers []model.Centroid, minDistance float64) bool {
	for _, other := range centers {
		if Distance(other.X, other.Y, c.X, c.Y) < minDistance {
			return false
		}
	}
	return true
}
