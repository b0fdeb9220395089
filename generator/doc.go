// Package generator produces synthetic 2-D point datasets.
//
// Every generator takes a random.Source and a dataPointAmount. The amount is
// both the approximate number of points and the spatial scale of the layout
// (most layouts live in the square [0, dataPointAmount)). Returned points are
// unassigned.
//
// # Layouts
//
//   - Random: uniform points in the square
//   - Centroids: uniform seed centroids in the square
//   - Circular: non-overlapping disks, area-uniform inside each disk
//   - Gaussian: normal blobs around random centers
//   - Grid: jittered square lattice
//   - Concentric: evenly spaced points on concentric rings
//   - Crescent: two interleaved half arcs
//   - Eye: eyelid outline plus a rim-biased iris disk
//
// Circular placement uses rejection sampling. Callers bound the number of
// attempts with maxAttempts; an infeasible layout then fails with
// ErrPlacementInfeasible instead of spinning forever.
package generator
