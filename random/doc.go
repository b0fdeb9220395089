// Package random provides the random source abstraction consumed by the
// dataset generators.
//
// Generators never reach for a global generator; they receive a Source.
// Production code uses a time-seeded RNG, tests inject a fixed seed or a
// scripted sequence:
//
//	src := random.NewRNG(4711)
//	pts, _ := generator.Random(src, 100)
package random
