package generator

import (
	"math"

	"github.com/hupe1980/pointgen/model"
	"github.com/hupe1980/pointgen/random"
)

// GaussianResult holds the points of a gaussian layout and the blob centers.
type GaussianResult struct {
	Points  model.Dataset
	Centers model.CentroidSet
}

// Gaussian draws clusters blob centers with Centroids and scatters
// ceil(dataPointAmount/clusters) points around each of them. Both axes get
// independent normal noise with standard deviation
// sqrt(dataPointAmount*variance).
func Gaussian(src random.Source, dataPointAmount, clusters int, variance float64) (*GaussianResult, error) {
	if math.IsNaN(variance) || math.IsInf(variance, 0) || variance < 0 {
		return nil, &ArgumentError{Name: "variance", Value: variance, Reason: "must be a non-negative finite number"}
	}

	centers, err := Centroids(src, clusters, dataPointAmount)
	if err != nil {
		return nil, err
	}

	stddev := math.Sqrt(float64(dataPointAmount) * variance)
	perCluster := (dataPointAmount + clusters - 1) / clusters

	data := make(model.Dataset, 0, perCluster*clusters)
	for _, c := range centers {
		for range perCluster {
			x := c.X + src.NormFloat64()*stddev
			y := c.Y + src.NormFloat64()*stddev
			data = append(data, model.NewPoint(x, y))
		}
	}

	return &GaussianResult{Points: data, Centers: centers}, nil
}
