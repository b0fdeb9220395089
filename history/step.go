package history

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/pointgen/model"
)

// Step is a snapshot of cluster membership after one assignment pass.
type Step struct {
	members []*roaring.Bitmap
	total   int
}

// NewStep captures the labels of points for k clusters.
// Unlabeled points and labels outside [0,k) are not recorded.
func NewStep(points model.Dataset, k int) *Step {
	if k < 0 {
		k = 0
	}

	s := &Step{
		members: make([]*roaring.Bitmap, k),
		total:   len(points),
	}
	for i := range s.members {
		s.members[i] = roaring.New()
	}

	for i, p := range points {
		c, ok := p.Assigned()
		if !ok || c < 0 || c >= k {
			continue
		}
		s.members[c].Add(uint32(i))
	}

	for _, bm := range s.members {
		bm.RunOptimize()
	}

	return s
}

// K returns the number of clusters.
func (s *Step) K() int {
	return len(s.members)
}

// Len returns the number of points the step was taken over.
func (s *Step) Len() int {
	return s.total
}

// Members returns a copy of the point indices assigned to cluster c.
// It returns an empty bitmap for an unknown cluster.
func (s *Step) Members(c int) *roaring.Bitmap {
	if c < 0 || c >= len(s.members) {
		return roaring.New()
	}
	return s.members[c].Clone()
}

// Sizes returns the number of points per cluster.
func (s *Step) Sizes() []int {
	sizes := make([]int, len(s.members))
	for i, bm := range s.members {
		sizes[i] = int(bm.GetCardinality())
	}
	return sizes
}

// Assignments expands the step into one label per point; -1 marks points
// that had no label.
func (s *Step) Assignments() []int {
	out := make([]int, s.total)
	for i := range out {
		out[i] = -1
	}
	for c, bm := range s.members {
		it := bm.Iterator()
		for it.HasNext() {
			out[it.Next()] = c
		}
	}
	return out
}

// Moved returns how many points changed cluster relative to prev.
//
// A point counts once even though it leaves one bitmap and enters another.
// With prev == nil every labeled point counts as moved.
func (s *Step) Moved(prev *Step) uint64 {
	if prev == nil {
		var n uint64
		for _, bm := range s.members {
			n += bm.GetCardinality()
		}
		return n
	}

	k := max(len(s.members), len(prev.members))
	changed := roaring.New()
	for c := range k {
		changed.Or(roaring.Xor(s.bitmap(c), prev.bitmap(c)))
	}
	return changed.GetCardinality()
}

func (s *Step) bitmap(c int) *roaring.Bitmap {
	if c < len(s.members) {
		return s.members[c]
	}
	return roaring.New()
}
