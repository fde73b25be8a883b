package spiral

import (
	"math"
	"testing"

	"spiralgen/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioParams(shape ShapeKind) Params {
	return Params{Shape: shape, Turns: 3, TrackWidth: 0.5, Spacing: 0.5, InnerRadius: 5.0}
}

func TestGeneratePathPointCount(t *testing.T) {
	tests := []struct {
		shape ShapeKind
		turns float64
		want  int
	}{
		{Circular, 3, 193},
		{Square, 3, 13},
		{Octagonal, 3, 25},
		{Square, 2.3, 10},
		{Octagonal, 0.5, 5},
		{Circular, 0.01, 1},
		{Circular, 0, 1},
		{Square, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			p := scenarioParams(tt.shape).WithTurns(tt.turns)
			points, err := p.Path(geometry.Point2D{})
			require.NoError(t, err)
			assert.Len(t, points, tt.want)
			assert.Equal(t, tt.want, p.TotalSteps()+1)
		})
	}
}

func TestGeneratePathMonotonicGrowth(t *testing.T) {
	centers := []geometry.Point2D{{}, {X: 100, Y: 100}, {X: -3.5, Y: 12}}
	for _, shape := range Shapes() {
		for _, center := range centers {
			for _, p := range []Params{
				scenarioParams(shape),
				DefaultParams().WithShape(shape),
				scenarioParams(shape).WithTrack(0.1, 0).WithInnerRadius(0).WithTurns(7.5),
			} {
				points, err := p.Path(center)
				require.NoError(t, err)

				radii := Radii(center, points)
				for i := 1; i < len(radii); i++ {
					if radii[i] < radii[i-1] {
						t.Fatalf("%s at %v: radius decreased at step %d (%g -> %g)",
							shape, center, i, radii[i-1], radii[i])
					}
				}
			}
		}
	}
}

func TestGeneratePathCircularScenario(t *testing.T) {
	points, err := scenarioParams(Circular).Path(geometry.Point2D{})
	require.NoError(t, err)
	require.Len(t, points, 193)

	assert.InDelta(t, 5.0, points[0].X, 1e-12)
	assert.InDelta(t, 0.0, points[0].Y, 1e-12)

	// A quarter turn in: r = 5 + (1/2π)(π/2).
	assert.InDelta(t, 0.0, points[16].X, 1e-12)
	assert.InDelta(t, 5.25, points[16].Y, 1e-12)

	// Three full turns end back on the +X axis, three pitches out.
	last := points[len(points)-1]
	assert.InDelta(t, 8.0, last.X, 1e-9)
	assert.InDelta(t, 0.0, last.Y, 1e-9)
}

func TestGeneratePathSquareScenario(t *testing.T) {
	points, err := scenarioParams(Square).Path(geometry.Point2D{})
	require.NoError(t, err)
	require.Len(t, points, 13)

	for i, r := range Radii(geometry.Point2D{}, points) {
		assert.InDelta(t, 5.0+0.25*float64(i), r, 1e-9, "vertex %d", i)
	}

	// First vertex sits at -45 degrees.
	assert.InDelta(t, 5/math.Sqrt2, points[0].X, 1e-12)
	assert.InDelta(t, -5/math.Sqrt2, points[0].Y, 1e-12)
}

func TestGeneratePathOctagonalStartAngle(t *testing.T) {
	points, err := scenarioParams(Octagonal).Path(geometry.Point2D{})
	require.NoError(t, err)
	require.Len(t, points, 25)

	angle := math.Atan2(points[0].Y, points[0].X)
	assert.InDelta(t, -math.Pi/8, angle, 1e-12)
	assert.InDelta(t, 5.0, points[0].Length(), 1e-12)
	assert.InDelta(t, 8.0, points[24].Length(), 1e-9)
}

func TestGeneratePathRelativeToCenter(t *testing.T) {
	center := geometry.NewPoint2D(100, 100)
	for _, shape := range Shapes() {
		origin, err := scenarioParams(shape).Path(geometry.Point2D{})
		require.NoError(t, err)
		shifted, err := scenarioParams(shape).Path(center)
		require.NoError(t, err)
		require.Len(t, shifted, len(origin))

		for i := range origin {
			assert.InDelta(t, origin[i].X+100, shifted[i].X, 1e-9)
			assert.InDelta(t, origin[i].Y+100, shifted[i].Y, 1e-9)
		}
	}
}

func TestGeneratePathDeterministic(t *testing.T) {
	for _, shape := range Shapes() {
		a, err := scenarioParams(shape).Path(geometry.NewPoint2D(1.5, -2))
		require.NoError(t, err)
		b, err := scenarioParams(shape).Path(geometry.NewPoint2D(1.5, -2))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestGeneratePathUnknownShape(t *testing.T) {
	points, err := GeneratePath(ShapeKind(42), geometry.Point2D{}, 3, 0.5, 0.5, 5)
	assert.ErrorIs(t, err, ErrUnknownShape)
	assert.Nil(t, points)
}
