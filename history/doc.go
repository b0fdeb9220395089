// Package history records the progress of an externally driven k-means run.
//
// A Recorder is plain state owned by the orchestrator: the initial seed
// centroids, one Step per assignment pass and the centroid set produced by
// each update. Nothing here is global; pass the Recorder along with the data.
//
// Step stores cluster membership as one roaring bitmap per cluster, which
// keeps long runs over large datasets compact and makes "how many points
// moved" a bitmap XOR.
package history
