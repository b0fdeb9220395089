// Package testutil provides testing utilities for pointgen.
//
// This package is intended for use in tests and benchmarks only.
//
// # Scripted Randomness
//
//	src := testutil.NewSequence().
//	    WithFloats(0.5, 0.25).
//	    WithInts(1).
//	    WithNorms(-1, 1)
//	pts, _ := generator.Circular(src, 100, 1, 5, 0)
//
// # Dataset Assertions
//
//	testutil.MaxDistanceToNearest(points, centers)
//	testutil.Mean(points)
package testutil
