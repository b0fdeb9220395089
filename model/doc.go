// Package model defines the plain data types shared by generators and the
// clustering step primitives.
//
// # Data Types
//
//   - Point: 2-D coordinate with an optional cluster label
//   - Centroid: 2-D cluster representative, identified by its index
//   - Dataset: ordered sequence of points (order carries no meaning)
//   - CentroidSet: ordered sequence of centroids (index = cluster label)
//
// All types are directly JSON-serializable:
//
//	{"x": 12.5, "y": 40, "cluster": null}
package model
