package history

import (
	"sync"

	"github.com/hupe1980/pointgen/model"
)

// Recorder collects the steps of one clustering run.
// It is safe for concurrent use.
type Recorder struct {
	mu            sync.RWMutex
	initial       model.CentroidSet
	steps         []*Step
	centroidSteps []model.CentroidSet
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetInitialCentroids stores the seed centroids of the run.
func (r *Recorder) SetInitialCentroids(cs model.CentroidSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initial = cs.Clone()
}

// InitialCentroids returns a copy of the seed centroids.
func (r *Recorder) InitialCentroids() model.CentroidSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.initial.Clone()
}

// ClearInitialCentroids forgets the seed centroids.
func (r *Recorder) ClearInitialCentroids() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initial = nil
}

// AddStep records the current labels of points for k clusters.
// Empty input is ignored; the recorded step is returned otherwise.
func (r *Recorder) AddStep(points model.Dataset, k int) *Step {
	if len(points) == 0 {
		return nil
	}

	s := NewStep(points, k)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, s)
	return s
}

// AddCentroids records the centroids produced by an update.
// Empty input is ignored.
func (r *Recorder) AddCentroids(cs model.CentroidSet) {
	if len(cs) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.centroidSteps = append(r.centroidSteps, cs.Clone())
}

// Steps returns the recorded steps in order.
func (r *Recorder) Steps() []*Step {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Last returns the most recent step, or nil.
func (r *Recorder) Last() *Step {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.steps) == 0 {
		return nil
	}
	return r.steps[len(r.steps)-1]
}

// CentroidSteps returns copies of the recorded centroid sets in order.
func (r *Recorder) CentroidSteps() []model.CentroidSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.CentroidSet, len(r.centroidSteps))
	for i, cs := range r.centroidSteps {
		out[i] = cs.Clone()
	}
	return out
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.steps)
}

// Reset drops all steps and centroid sets. Initial centroids are kept.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = nil
	r.centroidSteps = nil
}
