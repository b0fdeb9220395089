package pointgen

import (
	"context"
	"sync"

	"github.com/hupe1980/pointgen/history"
	"github.com/hupe1980/pointgen/model"
	"github.com/hupe1980/pointgen/snapshot"
)

// Session holds the state of one clustering run over a generated dataset:
// the labeled points, the current centroids and the step history.
//
// The caller decides when to step and when to stop.
type Session struct {
	gen *Generator

	mu        sync.Mutex
	result    *Result
	points    model.Dataset
	centroids model.CentroidSet
	history   *history.Recorder
}

// NewSession starts a run over a copy of res.Points seeded with centroids.
func (g *Generator) NewSession(res *Result, centroids model.CentroidSet) *Session {
	rec := history.NewRecorder()
	rec.SetInitialCentroids(centroids)

	return &Session{
		gen:       g,
		result:    res,
		points:    res.Points.Clone(),
		centroids: centroids.Clone(),
		history:   rec,
	}
}

// Step runs one assign+update step and records it.
func (s *Session) Step(ctx context.Context) (*StepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.gen.Step(ctx, s.points, s.centroids)
	if err != nil {
		return nil, err
	}

	s.history.AddStep(s.points, len(s.centroids))
	s.history.AddCentroids(res.Centroids)
	s.centroids = res.Centroids

	return res, nil
}

// Points returns a copy of the labeled points.
func (s *Session) Points() model.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points.Clone()
}

// Centroids returns a copy of the current centroids.
func (s *Session) Centroids() model.CentroidSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.centroids.Clone()
}

// History returns the step recorder of the run.
func (s *Session) History() *history.Recorder {
	return s.history
}

// Moved returns how many points changed cluster in the latest step.
// Before the second step every labeled point counts as moved.
func (s *Session) Moved() uint64 {
	steps := s.history.Steps()
	switch len(steps) {
	case 0:
		return 0
	case 1:
		return steps[0].Moved(nil)
	default:
		return steps[len(steps)-1].Moved(steps[len(steps)-2])
	}
}

// Snapshot captures the run, including the centroid history, for persistence.
func (s *Session) Snapshot(name string) *snapshot.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.result.Snapshot(name)
	snap.Points = s.points.Clone()

	steps := []model.CentroidSet{}
	if initial := s.history.InitialCentroids(); len(initial) > 0 {
		steps = append(steps, initial)
	}
	snap.CentroidSteps = append(steps, s.history.CentroidSteps()...)
	return snap
}

// Snapshot converts the result for persistence.
func (r *Result) Snapshot(name string) *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Name:   name,
		Layout: r.Request.Layout.String(),
		Amount: r.Request.Amount,
		Params: snapshot.Params{
			Clusters: r.Request.Clusters,
			Circles:  r.Request.Circles,
			Radius:   r.Request.Radius,
			Variance: r.Request.Variance,
			Rings:    r.Request.Rings,
		},
		Points:  r.Points.Clone(),
		Centers: r.Centers.Clone(),
	}
}

// RequestFromSnapshot rebuilds the request that produced snap.
func RequestFromSnapshot(snap *snapshot.Snapshot) (Request, error) {
	layout, err := ParseLayout(snap.Layout)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Layout:   layout,
		Amount:   snap.Amount,
		Clusters: snap.Params.Clusters,
		Variance: snap.Params.Variance,
		Circles:  snap.Params.Circles,
		Radius:   snap.Params.Radius,
		Rings:    snap.Params.Rings,
	}, nil
}

// Save writes snap to store and logs the outcome.
func (g *Generator) Save(ctx context.Context, store *snapshot.Store, snap *snapshot.Snapshot) error {
	err := store.Save(ctx, snap)
	g.opts.logger.LogSnapshot(ctx, snap.Name, snap.ID, err)
	return err
}
