// Package geometry provides the 2-D primitives shared by the dataset
// generators and the clustering step: Euclidean distance, positional jitter
// and minimum-separation checks for placing cluster centers.
package geometry
