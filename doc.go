// Package pointgen generates synthetic 2-D datasets and runs single k-means
// steps on them.
//
// # Quick Start
//
//	gen := pointgen.New(pointgen.WithSeed(42))
//
//	res, _ := gen.Generate(ctx, pointgen.Request{
//	    Layout:   pointgen.LayoutGaussian,
//	    Amount:   500,
//	    Clusters: 4,
//	    Variance: 0.5,
//	})
//
//	centroids, _ := gen.Centroids(ctx, 4, 500)
//	step, _ := gen.Step(ctx, res.Points, centroids)
//
// # Layouts
//
// Every layout works in a coordinate space scaled by the requested amount n:
//
//   - Random: n points uniform in [0,n)x[0,n)
//   - Circular: non-overlapping disks, points uniform by area inside each
//   - Gaussian: normal blobs around uniformly drawn centers
//   - Grid: a jittered sqrt(n) x sqrt(n) lattice
//   - Concentric: evenly spaced rings around (5n, 5n), scaled by 1/10
//   - Crescent: two interleaved half arcs
//   - Eye: an eyelid outline and an iris disk biased toward its rim
//
// # Randomness
//
// All draws go through a random.Source. WithSeed makes runs reproducible;
// WithSource injects any implementation, e.g. a scripted sequence in tests.
//
// # Clustering
//
// Step performs one assignment and one update. It labels points in place
// and returns the recomputed centroids. Driving the iteration is left to
// the caller; a Session keeps the per-step history of such a caller.
//
// # Persistence
//
// Results convert into snapshot.Snapshot values which snapshot.Store
// writes to any blobstore.BlobStore (local disk, memory, S3, MinIO).
package pointgen
