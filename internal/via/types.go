// Package via describes the plated through-hole dropped at a coil's center
// to route its inner end to another layer.
package via

import (
	"spiralgen/pkg/geometry"
)

// Via is a round pad with a drilled hole. Lengths are in millimeters.
type Via struct {
	Center      geometry.Point2D `json:"center"`
	PadDiameter float64          `json:"pad_diameter"` // Copper pad, outer diameter
	Drill       float64          `json:"drill"`        // Finished hole diameter
}

// Radius returns the pad radius.
func (v Via) Radius() float64 {
	return v.PadDiameter / 2
}

// Bounds returns the bounding rectangle of the pad.
func (v Via) Bounds() geometry.Rect {
	r := v.Radius()
	return geometry.Rect{
		X:      v.Center.X - r,
		Y:      v.Center.Y - r,
		Width:  r * 2,
		Height: r * 2,
	}
}
