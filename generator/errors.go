package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for out-of-contract generator parameters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPlacementInfeasible is returned when circle centers could not be
	// placed within the configured number of attempts.
	ErrPlacementInfeasible = errors.New("circle placement infeasible")
)

// ArgumentError describes a rejected parameter.
//
// It satisfies errors.Is(err, ErrInvalidArgument).
type ArgumentError struct {
	Name   string
	Value  any
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%v: %s", e.Name, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// PlacementError reports how far rejection sampling got before giving up.
//
// It satisfies errors.Is(err, ErrPlacementInfeasible).
type PlacementError struct {
	Placed   int
	Wanted   int
	Attempts int
	Radius   float64
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("circle placement infeasible: placed %d of %d circles (radius %g) after %d attempts",
		e.Placed, e.Wanted, e.Radius, e.Attempts)
}

func (e *PlacementError) Unwrap() error { return ErrPlacementInfeasible }

func checkAmount(n int) error {
	if n < 1 {
		return &ArgumentError{Name: "dataPointAmount", Value: n, Reason: "must be at least 1"}
	}
	return nil
}

func checkCount(name string, v int) error {
	if v < 1 {
		return &ArgumentError{Name: name, Value: v, Reason: "must be at least 1"}
	}
	return nil
}
