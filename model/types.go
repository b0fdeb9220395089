package model

import (
	"fmt"
)

// Point is a 2-D data point.
//
// Cluster is nil until an assignment step labels the point.
type Point struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Cluster *int    `json:"cluster"`
}

// NewPoint returns an unassigned point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Assigned returns the cluster label and whether the point has one.
func (p Point) Assigned() (int, bool) {
	if p.Cluster == nil {
		return 0, false
	}
	return *p.Cluster, true
}

// Assign sets the cluster label.
func (p *Point) Assign(cluster int) {
	c := cluster
	p.Cluster = &c
}

// Unassign clears the cluster label.
func (p *Point) Unassign() {
	p.Cluster = nil
}

// String returns a string representation of the Point.
func (p Point) String() string {
	if c, ok := p.Assigned(); ok {
		return fmt.Sprintf("Point(%g, %g | %d)", p.X, p.Y, c)
	}
	return fmt.Sprintf("Point(%g, %g)", p.X, p.Y)
}

// Centroid is a cluster representative.
type Centroid struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point converts the centroid into an unassigned point.
func (c Centroid) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// String returns a string representation of the Centroid.
func (c Centroid) String() string {
	return fmt.Sprintf("Centroid(%g, %g)", c.X, c.Y)
}

// Dataset is an ordered sequence of points.
type Dataset []Point

// Clone returns a deep copy. Cluster labels are copied, not shared.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	for i, p := range d {
		out[i] = Point{X: p.X, Y: p.Y}
		if c, ok := p.Assigned(); ok {
			out[i].Assign(c)
		}
	}
	return out
}

// Xs returns the x coordinates.
func (d Dataset) Xs() []float64 {
	xs := make([]float64, len(d))
	for i, p := range d {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the y coordinates.
func (d Dataset) Ys() []float64 {
	ys := make([]float64, len(d))
	for i, p := range d {
		ys[i] = p.Y
	}
	return ys
}

// CentroidSet is an ordered sequence of centroids.
type CentroidSet []Centroid

// Clone returns a copy of the set.
func (cs CentroidSet) Clone() CentroidSet {
	if cs == nil {
		return nil
	}
	out := make(CentroidSet, len(cs))
	copy(out, cs)
	return out
}
