package pointgen

import (
	"fmt"
	"math"
	"strings"
)

// Layout selects a dataset generator.
type Layout int

const (
	LayoutRandom Layout = iota
	LayoutCircular
	LayoutGaussian
	LayoutGrid
	LayoutConcentric
	LayoutCrescent
	LayoutEye
)

var layoutNames = [...]string{
	LayoutRandom:     "random",
	LayoutCircular:   "circular",
	LayoutGaussian:   "gaussian",
	LayoutGrid:       "grid",
	LayoutConcentric: "concentric",
	LayoutCrescent:   "crescent",
	LayoutEye:        "eye",
}

// Layouts returns all supported layouts.
func Layouts() []Layout {
	out := make([]Layout, len(layoutNames))
	for i := range out {
		out[i] = Layout(i)
	}
	return out
}

func (l Layout) valid() bool {
	return l >= 0 && int(l) < len(layoutNames)
}

// String returns the lowercase layout name.
func (l Layout) String() string {
	if !l.valid() {
		return fmt.Sprintf("layout(%d)", int(l))
	}
	return layoutNames[l]
}

// ParseLayout parses a layout name. Matching is case-insensitive.
func ParseLayout(s string) (Layout, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range layoutNames {
		if n == name {
			return Layout(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Layout) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayout, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Layout) UnmarshalText(text []byte) error {
	parsed, err := ParseLayout(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Request describes one dataset to generate. Only the parameters of the
// selected layout are read.
type Request struct {
	Layout Layout `json:"layout" toml:"layout"`
	Amount int    `json:"amount" toml:"amount"`

	// Clusters is the blob count of the gaussian layout.
	Clusters int `json:"clusters,omitempty" toml:"clusters"`
	// Variance scales the gaussian spread: stddev = sqrt(Amount*Variance).
	Variance float64 `json:"variance,omitempty" toml:"variance"`

	// Circles and Radius configure the circular layout.
	Circles int     `json:"circles,omitempty" toml:"circles"`
	Radius  float64 `json:"radius,omitempty" toml:"radius"`

	// Rings is the ring count of the concentric layout.
	Rings int `json:"rings,omitempty" toml:"rings"`
}

// Validate checks the request without drawing any randomness.
func (r Request) Validate() error {
	if !r.Layout.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLayout, int(r.Layout))
	}
	if r.Amount < 1 {
		return fmt.Errorf("%w: amount must be at least 1, got %d", ErrInvalidArgument, r.Amount)
	}

	switch r.Layout {
	case LayoutCircular:
		if r.Circles < 1 {
			return fmt.Errorf("%w: circles must be at least 1, got %d", ErrInvalidArgument, r.Circles)
		}
		if !finite(r.Radius) || r.Radius <= 0 {
			return fmt.Errorf("%w: radius must be a positive finite number, got %g", ErrInvalidArgument, r.Radius)
		}
		if 2*r.Radius > float64(r.Amount) {
			return fmt.Errorf("%w: radius %g does not fit into amount %d", ErrInvalidArgument, r.Radius, r.Amount)
		}
	case LayoutGaussian:
		if r.Clusters < 1 {
			return fmt.Errorf("%w: clusters must be at least 1, got %d", ErrInvalidArgument, r.Clusters)
		}
		if !finite(r.Variance) || r.Variance < 0 {
			return fmt.Errorf("%w: variance must be a non-negative finite number, got %g", ErrInvalidArgument, r.Variance)
		}
	case LayoutConcentric:
		if r.Rings < 1 {
			return fmt.Errorf("%w: rings must be at least 1, got %d", ErrInvalidArgument, r.Rings)
		}
	}

	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
