package via

import (
	"errors"
	"fmt"

	"spiralgen/pkg/geometry"
)

// ErrInvalidSize is returned for a pad that cannot hold its drill.
var ErrInvalidSize = errors.New("invalid via size")

// Params holds the via footprint in millimeters.
type Params struct {
	PadDiameter float64 `json:"pad_diameter"`
	Drill       float64 `json:"drill"`
}

// DefaultParams returns the via size used for coil centers.
func DefaultParams() Params {
	return Params{
		PadDiameter: 0.6,
		Drill:       0.3,
	}
}

// WithSize returns a copy of params with a custom pad and drill diameter.
func (p Params) WithSize(padDiameter, drill float64) Params {
	p.PadDiameter = padDiameter
	p.Drill = drill
	return p
}

// Validate checks that the drill is positive and fits inside the pad.
func (p Params) Validate() error {
	if p.Drill <= 0 {
		return fmt.Errorf("%w: drill must be > 0, got %g", ErrInvalidSize, p.Drill)
	}
	if p.PadDiameter <= p.Drill {
		return fmt.Errorf("%w: pad %g must be larger than drill %g", ErrInvalidSize, p.PadDiameter, p.Drill)
	}
	return nil
}

// At returns a via of this size centered on c.
func (p Params) At(c geometry.Point2D) Via {
	return Via{Center: c, PadDiameter: p.PadDiameter, Drill: p.Drill}
}
