package spiral

import (
	"fmt"
	"math"

	"spiralgen/pkg/geometry"
)

// GeneratePath returns the outline of a spiral around center, innermost
// point first. Consecutive points are meant to be joined by straight
// segments; circular spirals are a dense polygonal approximation.
//
// The path holds TotalSteps()+1 points and its distance from center never
// decreases. Inputs are assumed to satisfy Params.Validate; only an unknown
// shape is reported as an error.
func GeneratePath(shape ShapeKind, center geometry.Point2D, turns, trackWidth, spacing, innerRadius float64) ([]geometry.Point2D, error) {
	steps := totalSteps(shape, turns)
	pitch := trackWidth + spacing

	switch shape {
	case Circular:
		return circularPath(center, steps, pitch, innerRadius), nil
	case Square:
		return polygonPath(center, steps, 4, -math.Pi/4, pitch, innerRadius), nil
	case Octagonal:
		return polygonPath(center, steps, 8, -math.Pi/8, pitch, innerRadius), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(shape))
	}
}

// Path generates the spiral described by p around center.
func (p Params) Path(center geometry.Point2D) ([]geometry.Point2D, error) {
	return GeneratePath(p.Shape, center, p.Turns, p.TrackWidth, p.Spacing, p.InnerRadius)
}

func totalSteps(shape ShapeKind, turns float64) int {
	if turns <= 0 {
		return 0
	}
	return int(math.Floor(turns * float64(shape.SegmentsPerTurn())))
}

// circularPath samples an Archimedean spiral r = r0 + b*theta.
func circularPath(center geometry.Point2D, steps int, pitch, innerRadius float64) []geometry.Point2D {
	segments := float64(Circular.SegmentsPerTurn())
	b := pitch / (2 * math.Pi)
	step := 2 * math.Pi / segments

	points := make([]geometry.Point2D, 0, steps+1)
	for i := 0; i <= steps; i++ {
		theta := float64(i) * step
		r := innerRadius + b*theta
		points = append(points, center.Add(geometry.Polar(r, theta)))
	}
	return points
}

// polygonPath walks the polygon vertices, growing the radius by pitch/sides
// after every vertex. Sides of successive turns are therefore not parallel.
func polygonPath(center geometry.Point2D, steps, sides int, startAngle, pitch, innerRadius float64) []geometry.Point2D {
	step := 2 * math.Pi / float64(sides)
	dr := pitch / float64(sides)

	points := make([]geometry.Point2D, 0, steps+1)
	r := innerRadius
	for i := 0; i <= steps; i++ {
		theta := startAngle + float64(i)*step
		points = append(points, center.Add(geometry.Polar(r, theta)))
		r += dr
	}
	return points
}
