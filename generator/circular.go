package generator

import (
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/pointgen/geometry"
	"github.com/hupe1980/pointgen/model"
	"github.com/hupe1980/pointgen/random"
)

// CircularResult holds the points of a circular layout and the disk centers
// they were sampled around.
type CircularResult struct {
	Points  model.Dataset
	Centers model.CentroidSet
}

// ParseRadius converts a textual radius (as typed into a form field) into a
// float. Surrounding whitespace is ignored.
func ParseRadius(s string) (float64, error) {
	r, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ArgumentError{Name: "radius", Value: s, Reason: "not a number"}
	}
	return r, nil
}

// Circular places circles non-overlapping disks of the given radius and
// samples floor(dataPointAmount/circles) points uniformly by area inside
// each of them.
//
// Centers are drawn from [radius, dataPointAmount-radius) on both axes and
// accepted only when they keep 2*radius to every accepted center. With
// maxAttempts <= 0 the search is unbounded and will not return if the disks
// cannot fit; otherwise a *PlacementError is returned once maxAttempts
// candidates have been drawn without placing every disk.
func Circular(src random.Source, dataPointAmount, circles int, radius float64, maxAttempts int) (*CircularResult, error) {
	if err := checkAmount(dataPointAmount); err != nil {
		return nil, err
	}
	if err := checkCount("circles", circles); err != nil {
		return nil, err
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, &ArgumentError{Name: "radius", Value: radius, Reason: "must be a positive finite number"}
	}
	if 2*radius > float64(dataPointAmount) {
		return nil, &ArgumentError{Name: "radius", Value: radius, Reason: "disk does not fit into the coordinate space"}
	}

	centers, err := placeCenters(src, dataPointAmount, circles, radius, maxAttempts)
	if err != nil {
		return nil, err
	}

	perCircle := dataPointAmount / circles
	data := make(model.Dataset, 0, perCircle*circles)

	for _, c := range centers {
		for range perCircle {
			angle := src.Float64() * 2 * math.Pi
			// sqrt keeps the density uniform over the disk area.
			r := radius * math.Sqrt(src.Float64())
			data = append(data, model.NewPoint(c.X+r*math.Cos(angle), c.Y+r*math.Sin(angle)))
		}
	}

	return &CircularResult{Points: data, Centers: centers}, nil
}

func placeCenters(src random.Source, n, circles int, radius float64, maxAttempts int) (model.CentroidSet, error) {
	minDistance := 2 * radius
	span := float64(n) - 2*radius

	centers := make(model.CentroidSet, 0, circles)
	attempts := 0

	for len(centers) < circles {
		if maxAttempts > 0 && attempts >= maxAttempts {
			return nil, &PlacementError{
				Placed:   len(centers),
				Wanted:   circles,
				Attempts: attempts,
				Radius:   radius,
			}
		}
		attempts++

		candidate := model.Centroid{
			X: math.Floor(src.Float64()*span) + radius,
			Y: math.Floor(src.Float64()*span) + radius,
		}

		if geometry.IsValidCenter(candidate, centers, minDistance) {
			centers = append(centers, candidate)
		}
	}

	return centers, nil
}
