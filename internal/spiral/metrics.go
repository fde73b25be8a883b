package spiral

import (
	"spiralgen/pkg/geometry"

	"gonum.org/v1/gonum/floats"
)

// PathLength returns the total length of the straight segments joining
// consecutive points.
func PathLength(points []geometry.Point2D) float64 {
	if len(points) < 2 {
		return 0
	}
	segments := make([]float64, len(points)-1)
	for i := range segments {
		segments[i] = points[i].Distance(points[i+1])
	}
	return floats.Sum(segments)
}

// Radii returns the distance of every point from center.
func Radii(center geometry.Point2D, points []geometry.Point2D) []float64 {
	radii := make([]float64, len(points))
	for i, p := range points {
		radii[i] = p.Distance(center)
	}
	return radii
}

// RadiusRange returns the smallest and largest distance from center.
// An empty path yields zeros.
func RadiusRange(center geometry.Point2D, points []geometry.Point2D) (min, max float64) {
	if len(points) == 0 {
		return 0, 0
	}
	radii := Radii(center, points)
	return floats.Min(radii), floats.Max(radii)
}

// Bounds returns the axis-aligned bounding box of the path's centerline.
func Bounds(points []geometry.Point2D) geometry.Rect {
	return geometry.BoundingBox(points)
}
