package spiral

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownShape is returned when a ShapeKind is not one of the named shapes.
	ErrUnknownShape = errors.New("unknown spiral shape")

	// ErrInvalidParams is returned when spiral parameters violate their ranges.
	ErrInvalidParams = errors.New("invalid spiral parameters")
)

// Params holds the sizing of a spiral coil. All lengths share one linear
// unit (millimeters in the front ends); nothing here converts units.
type Params struct {
	Shape       ShapeKind `json:"shape"`
	Turns       float64   `json:"turns"`        // May be fractional
	TrackWidth  float64   `json:"track_width"`  // Copper width, > 0
	Spacing     float64   `json:"spacing"`      // Gap between windings
	InnerRadius float64   `json:"inner_radius"` // Radius of the first point
}

// DefaultParams returns the parameters the coil dialog opens with.
func DefaultParams() Params {
	return Params{
		Shape:       Circular,
		Turns:       5,
		TrackWidth:  0.2,
		Spacing:     0.2,
		InnerRadius: 1.0,
	}
}

// WithShape returns a copy of p with the given shape.
func (p Params) WithShape(shape ShapeKind) Params {
	p.Shape = shape
	return p
}

// WithTurns returns a copy of p with the given turn count.
func (p Params) WithTurns(turns float64) Params {
	p.Turns = turns
	return p
}

// WithTrack returns a copy of p with the given track width and spacing.
func (p Params) WithTrack(width, spacing float64) Params {
	p.TrackWidth = width
	p.Spacing = spacing
	return p
}

// WithInnerRadius returns a copy of p with the given inner radius.
func (p Params) WithInnerRadius(radius float64) Params {
	p.InnerRadius = radius
	return p
}

// Pitch returns the center-to-center distance between adjacent windings.
func (p Params) Pitch() float64 {
	return p.TrackWidth + p.Spacing
}

// TotalSteps returns the number of segments in the generated path.
func (p Params) TotalSteps() int {
	return totalSteps(p.Shape, p.Turns)
}

// Validate checks the ranges the generator and estimator rely on.
func (p Params) Validate() error {
	if !p.Shape.Known() {
		return fmt.Errorf("%w: %d", ErrUnknownShape, int(p.Shape))
	}
	if !finite(p.Turns) || p.Turns < 0 {
		return fmt.Errorf("%w: turns must be >= 0, got %g", ErrInvalidParams, p.Turns)
	}
	if !finite(p.TrackWidth) || p.TrackWidth <= 0 {
		return fmt.Errorf("%w: track width must be > 0, got %g", ErrInvalidParams, p.TrackWidth)
	}
	if !finite(p.Spacing) || p.Spacing < 0 {
		return fmt.Errorf("%w: spacing must be >= 0, got %g", ErrInvalidParams, p.Spacing)
	}
	if !finite(p.InnerRadius) || p.InnerRadius < 0 {
		return fmt.Errorf("%w: inner radius must be >= 0, got %g", ErrInvalidParams, p.InnerRadius)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
