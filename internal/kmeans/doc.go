// Package kmeans implements the single-step k-means primitives.
//
// The package deliberately stops at one iteration: NearestCentroid and
// Average are the building blocks, Assign/Update/Step compose them once.
// Iteration count and convergence detection belong to the caller.
package kmeans
