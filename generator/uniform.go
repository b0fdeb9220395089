package generator

import (
	"math"

	"github.com/hupe1980/pointgen/model"
	"github.com/hupe1980/pointgen/random"
)

// Random returns dataPointAmount points drawn uniformly from
// [0, dataPointAmount) x [0, dataPointAmount). Coordinates are integral.
func Random(src random.Source, dataPointAmount int) (model.Dataset, error) {
	if err := checkAmount(dataPointAmount); err != nil {
		return nil, err
	}

	data := make(model.Dataset, dataPointAmount)
	for i := range data {
		data[i] = model.NewPoint(uniformCoord(src, dataPointAmount), uniformCoord(src, dataPointAmount))
	}
	return data, nil
}

// Centroids returns clusters centroids drawn the same way as Random.
//
// They serve as k-means seeds and as blob centers for Gaussian.
func Centroids(src random.Source, clusters, dataPointAmount int) (model.CentroidSet, error) {
	if err := checkCount("clusters", clusters); err != nil {
		return nil, err
	}
	if err := checkAmount(dataPointAmount); err != nil {
		return nil, err
	}

	cs := make(model.CentroidSet, clusters)
	for i := range cs {
		cs[i] = model.Centroid{
			X: uniformCoord(src, dataPointAmount),
			Y: uniformCoord(src, dataPointAmount),
		}
	}
	return cs, nil
}

func uniformCoord(src random.Source, n int) float64 {
	return math.Floor(src.Float64() * float64(n))
}
