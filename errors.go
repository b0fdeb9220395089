package pointgen

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pointgen/generator"
	"github.com/hupe1980/pointgen/internal/kmeans"
)

var (
	// ErrInvalidArgument is returned for out-of-contract parameters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPlacementInfeasible is returned when circle centers could not be
	// placed within the configured number of attempts.
	ErrPlacementInfeasible = errors.New("circle placement infeasible")

	// ErrNoCentroids is returned when a step or classification gets an
	// empty centroid set.
	ErrNoCentroids = errors.New("no centroids")

	// ErrUnknownLayout is returned for unsupported layout names or values.
	ErrUnknownLayout = errors.New("unknown layout")
)

// ErrPlacement reports how far circle placement got before giving up.
//
// It matches ErrPlacementInfeasible and the underlying generator error with
// errors.Is and errors.As.
type ErrPlacement struct {
	Placed   int
	Wanted   int
	Attempts int
	cause    error
}

func (e *ErrPlacement) Error() string {
	return fmt.Sprintf("placed %d of %d circles after %d attempts", e.Placed, e.Wanted, e.Attempts)
}

func (e *ErrPlacement) Unwrap() []error { return []error{ErrPlacementInfeasible, e.cause} }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pe *generator.PlacementError
	if errors.As(err, &pe) {
		return &ErrPlacement{Placed: pe.Placed, Wanted: pe.Wanted, Attempts: pe.Attempts, cause: err}
	}
	if errors.Is(err, generator.ErrInvalidArgument) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if errors.Is(err, kmeans.ErrNoCentroids) {
		return fmt.Errorf("%w: %w", ErrNoCentroids, err)
	}
	// All-NaN distances only happen for non-finite coordinates.
	if errors.Is(err, kmeans.ErrNoFiniteDistance) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
