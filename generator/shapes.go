package generator

import (
	"math"

	"github.com/hupe1980/pointgen/geometry"
	"github.com/hupe1980/pointgen/model"
	"github.com/hupe1980/pointgen/random"
)

const (
	gridScale        = 0.1
	concentricCenter = 5
	concentricShrink = 0.9
	concentricScale  = 10
	crescentRadius   = 0.5
	crescentShift    = 5
	eyelidShare      = 0.7
	irisShare        = 0.3
	eyeAspect        = 0.5
	eyelidExponent   = 0.4
	irisExponent     = 0.3
	irisDivisor      = 10
)

// Grid lays out a jittered square lattice with cell size dataPointAmount*0.1.
//
// Rows are emitted whole; generation stops after the first row that pushes
// the count past dataPointAmount, so the result may overshoot by at most one
// row.
func Grid(src random.Source, dataPointAmount int) (model.Dataset, error) {
	if err := checkAmount(dataPointAmount); err != nil {
		return nil, err
	}

	cellScale := float64(dataPointAmount) * gridScale
	var data model.Dataset

	for i := 0; float64(i) <= cellScale; i++ {
		for j := 0; float64(j) <= cellScale; j++ {
			x := float64(i) * cellScale
			y := float64(j) * cellScale
			data = append(data, jittered(src, x, y, dataPointAmount))
		}

		if len(data) > dataPointAmount {
			break
		}
	}

	return data, nil
}

// Concentric places rings concentric circles around (5n, 5n) with radii
// evenly spaced up to 90% of the center offset. Each ring receives
// floor(dataPointAmount/rings) points at equal angular steps. Coordinates are
// scaled down by 10 before jitter is applied.
func Concentric(src random.Source, dataPointAmount, rings int) (model.Dataset, error) {
	if err := checkAmount(dataPointAmount); err != nil {
		return nil, err
	}
	if err := checkCount("rings", rings); err != nil {
		return nil, err
	}

	centerX := float64(dataPointAmount) * concentricCenter
	centerY := float64(dataPointAmount) * concentricCenter
	maxRadius := math.Min(centerX, centerY) * concentricShrink

	perRing := dataPointAmount / rings
	if perRing == 0 {
		return model.Dataset{}, nil
	}
	angleIncrement := 2 * math.Pi / float64(perRing)

	data := make(model.Dataset, 0, perRing*rings)
	for i := 1; i <= rings; i++ {
		radius := float64(i) / float64(rings) * maxRadius

		for j := range perRing {
			angle := float64(j) * angleIncrement
			x := (centerX + radius*math.Cos(angle)) / concentricScale
			y := (centerY + radius*math.Sin(angle)) / concentricScale
			data = append(data, jittered(src, x, y, dataPointAmount))
		}
	}

	return data, nil
}

// Crescent returns two interleaved half arcs around (n/2, n/2) with radius
// n/4. The lower arc sweeps [0, π], the upper arc sweeps [π, 2π] and is
// shifted right by n/5. Each arc has floor(n/2)+1 samples.
func Crescent(src random.Source, dataPointAmount int) (model.Dataset, error) {
	if err := checkAmount(dataPointAmount); err != nil {
		return nil, err
	}

	n := float64(dataPointAmount)
	half := n / 2
	centerX, centerY := half, half
	maxRadius := math.Min(centerX, centerY) * crescentRadius

	samples := int(math.Floor(half)) + 1
	data := make(model.Dataset, 0, 2*samples)

	for i := 0; float64(i) <= half; i++ {
		theta := math.Pi * (float64(i) / half)
		x := centerX + maxRadius*math.Cos(theta)
		y := centerY + maxRadius*math.Sin(theta)
		data = append(data, jittered(src, x, y, dataPointAmount))
	}

	for i := 0; float64(i) <= half; i++ {
		theta := math.Pi + math.Pi*(float64(i)/half)
		x := n/crescentShift + centerX + maxRadius*math.Cos(theta)
		y := centerY + maxRadius*math.Sin(theta)
		data = append(data, jittered(src, x, y, dataPointAmount))
	}

	return data, nil
}

// Eye returns an eye shape centered at (n/2, n/2).
//
// floor(0.7n) points trace the eyelids: the first half lies in the angular
// band [0.25π, 0.75π], the rest in [1.25π, 1.75π]. Their radius follows
// (n/2)*sin(θ)^0.4 and the y axis is squashed by the eye aspect (0.5).
// floor(0.3n) more points fill an iris of radius n/10 with r = R*U^0.3,
// which concentrates them toward the rim.
func Eye(src random.Source, dataPointAmount int) (model.Dataset, error) {
	if err := checkAmount(dataPointAmount); err != nil {
		return nil, err
	}

	n := float64(dataPointAmount)
	centerX, centerY := n/2, n/2
	eyeWidth := n
	eyeHeight := n * eyeAspect
	irisRadius := n / irisDivisor

	eyelidPoints := int(math.Floor(n * eyelidShare))
	irisPoints := int(math.Floor(n * irisShare))

	data := make(model.Dataset, 0, eyelidPoints+irisPoints)

	for i := range eyelidPoints {
		var angle, r float64
		if float64(i) < float64(eyelidPoints)/2 {
			angle = math.Pi * (src.Float64()*0.5 + 0.25)
			r = eyeWidth / 2 * math.Pow(math.Sin(angle), eyelidExponent)
		} else {
			angle = math.Pi * (src.Float64()*0.5 + 1.25)
			r = eyeWidth / 2 * math.Pow(math.Sin(math.Pi+angle), eyelidExponent)
		}
		x := centerX + r*math.Cos(angle)
		y := centerY + r*math.Sin(angle)*(eyeHeight/eyeWidth)
		data = append(data, jittered(src, x, y, dataPointAmount))
	}

	for range irisPoints {
		angle := src.Float64() * 2 * math.Pi
		r := irisRadius * math.Pow(src.Float64(), irisExponent)
		x := centerX + r*math.Cos(angle)
		y := centerY + r*math.Sin(angle)
		data = append(data, jittered(src, x, y, dataPointAmount))
	}

	return data, nil
}

func jittered(src random.Source, x, y float64, n int) model.Point {
	return model.NewPoint(geometry.AddJitter(src, x, n), geometry.AddJitter(src, y, n))
}
