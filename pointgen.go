package pointgen

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/pointgen/generator"
	"github.com/hupe1980/pointgen/internal/kmeans"
	"github.com/hupe1980/pointgen/model"
	"github.com/hupe1980/pointgen/random"
)

// Result is a generated dataset.
type Result struct {
	Request Request
	Points  model.Dataset
	// Centers holds the disk centers (circular) or blob centers (gaussian).
	// It is nil for the other layouts.
	Centers model.CentroidSet
}

// StepResult is the outcome of one k-means step.
type StepResult struct {
	// Centroids are the recomputed centroids. A cluster without members
	// moves to (0, 0).
	Centroids model.CentroidSet
	// Changed is the number of points whose label changed.
	Changed int
	// Sizes holds the number of points per cluster.
	Sizes []int
	// Inertia is the sum of squared distances to the old centroids.
	Inertia float64
}

// Generator produces datasets and runs clustering steps.
// It is safe for concurrent use when its random source is.
type Generator struct {
	opts options
}

// New creates a Generator.
func New(optFns ...Option) *Generator {
	return &Generator{opts: applyOptions(optFns)}
}

// Source returns the random source in use.
func (g *Generator) Source() random.Source {
	return g.opts.source
}

// Generate produces the dataset described by req.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	return g.generate(ctx, g.opts.source, req)
}

func (g *Generator) generate(ctx context.Context, src random.Source, req Request) (*Result, error) {
	start := time.Now()

	res, err := g.dispatch(ctx, src, req)
	err = translateError(err)

	points := 0
	if res != nil {
		points = len(res.Points)
	}
	duration := time.Since(start)
	g.opts.metricsCollector.RecordGenerate(req.Layout, points, duration, err)
	g.opts.logger.LogGenerate(ctx, req, points, duration, err)

	if err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Generator) dispatch(ctx context.Context, src random.Source, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Request: req}
	n := req.Amount

	var err error
	switch req.Layout {
	case LayoutRandom:
		res.Points, err = generator.Random(src, n)
	case LayoutCircular:
		var cr *generator.CircularResult
		cr, err = generator.Circular(src, n, req.Circles, req.Radius, g.opts.maxPlacementAttempts)
		if cr != nil {
			res.Points, res.Centers = cr.Points, cr.Centers
		}
	case LayoutGaussian:
		var gr *generator.GaussianResult
		gr, err = generator.Gaussian(src, n, req.Clusters, req.Variance)
		if gr != nil {
			res.Points, res.Centers = gr.Points, gr.Centers
		}
	case LayoutGrid:
		res.Points, err = generator.Grid(src, n)
	case LayoutConcentric:
		res.Points, err = generator.Concentric(src, n, req.Rings)
	case LayoutCrescent:
		res.Points, err = generator.Crescent(src, n)
	case LayoutEye:
		res.Points, err = generator.Eye(src, n)
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownLayout, int(req.Layout))
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

// GenerateBatch runs several requests concurrently and returns the results
// in request order. The first failure cancels the remaining requests.
//
// When the generator's source is a *random.RNG, every request gets its own
// derived RNG, drawn in request order, so seeded batches are reproducible.
// Other sources are shared and must be safe for concurrent use.
func (g *Generator) GenerateBatch(ctx context.Context, reqs []Request) ([]*Result, error) {
	start := time.Now()

	sources := make([]random.Source, len(reqs))
	for i := range reqs {
		sources[i] = g.opts.source
		if rng, ok := g.opts.source.(*random.RNG); ok {
			sources[i] = rng.Derive()
		}
	}

	results := make([]*Result, len(reqs))

	eg, egCtx := errgroup.WithContext(ctx)
	if g.opts.batchConcurrency > 0 {
		eg.SetLimit(g.opts.batchConcurrency)
	}

	for i, req := range reqs {
		eg.Go(func() error {
			res, err := g.generate(egCtx, sources[i], req)
			if err != nil {
				return fmt.Errorf("request %d (%s): %w", i, req.Layout, err)
			}
			results[i] = res
			return nil
		})
	}

	err := eg.Wait()

	failed := 0
	if err != nil {
		failed = 1
	}
	duration := time.Since(start)
	g.opts.metricsCollector.RecordBatch(len(reqs), failed, duration)
	g.opts.logger.LogBatch(ctx, len(reqs), duration, err)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// Centroids draws k initial centroids uniformly in [0,n)x[0,n).
func (g *Generator) Centroids(ctx context.Context, k, n int) (model.CentroidSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cs, err := generator.Centroids(g.opts.source, k, n)
	return cs, translateError(err)
}

// Step assigns every point to its nearest centroid, updating labels in place,
// and recomputes the centroids from the new labels.
func (g *Generator) Step(ctx context.Context, points model.Dataset, centroids model.CentroidSet) (*StepResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := kmeans.Step(points, centroids)
	err = translateError(err)

	changed := 0
	if res != nil {
		changed = res.Changed
	}
	g.opts.metricsCollector.RecordStep(len(centroids), changed, time.Since(start), err)
	g.opts.logger.LogStep(ctx, len(centroids), changed, err)

	if err != nil {
		return nil, err
	}

	return &StepResult{
		Centroids: res.Centroids,
		Changed:   res.Changed,
		Sizes:     res.Sizes,
		Inertia:   kmeans.Inertia(points, centroids),
	}, nil
}

// NearestCentroid returns the index of the centroid closest to p.
// Ties go to the lowest index. An empty set yields ErrNoCentroids.
func NearestCentroid(p model.Point, centroids model.CentroidSet) (int, error) {
	idx, err := kmeans.NearestCentroid(p, centroids)
	return idx, translateError(err)
}

// Average returns the arithmetic mean of values, or 0 for an empty slice.
func Average(values []float64) float64 {
	return kmeans.Average(values)
}
