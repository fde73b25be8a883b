package board

import (
	"fmt"

	"spiralgen/internal/spiral"
	"spiralgen/internal/via"
	"spiralgen/pkg/geometry"

	"gonum.org/v1/gonum/mat"
)

// Options controls where and how a coil lands on the board.
type Options struct {
	Origin    geometry.Point2D `json:"origin"`   // Coil center on the board, mm
	Rotation  float64          `json:"rotation"` // Counter-clockwise, degrees
	Layer     Layer            `json:"layer"`
	CenterVia bool             `json:"center_via"`
	Via       via.Params       `json:"via"`
}

// DefaultOptions places the coil at (100 mm, 100 mm) on the front copper
// without a center via. The via size applies once CenterVia is set.
func DefaultOptions() Options {
	return Options{
		Origin: geometry.NewPoint2D(100, 100),
		Layer:  FrontCopper,
		Via:    via.DefaultParams(),
	}
}

// WithOrigin returns a copy of o centered at (x, y) mm.
func (o Options) WithOrigin(x, y float64) Options {
	o.Origin = geometry.NewPoint2D(x, y)
	return o
}

// WithRotation returns a copy of o rotated by degrees.
func (o Options) WithRotation(degrees float64) Options {
	o.Rotation = degrees
	return o
}

// WithLayer returns a copy of o on the given layer.
func (o Options) WithLayer(l Layer) Options {
	o.Layer = l
	return o
}

// WithCenterVia returns a copy of o with the center via enabled or disabled.
func (o Options) WithCenterVia(enabled bool) Options {
	o.CenterVia = enabled
	return o
}

// Validate checks the layer and, when enabled, the via size.
func (o Options) Validate() error {
	if !o.Layer.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLayer, o.Layer)
	}
	if o.CenterVia {
		if err := o.Via.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Transform returns the mapping from coil coordinates to board millimeters.
func (o Options) Transform() geometry.AffineTransform {
	return geometry.Translation(o.Origin.X, o.Origin.Y).
		Compose(geometry.Rotation(geometry.Radians(o.Rotation)))
}

// Track is a straight copper segment in board nanometers.
type Track struct {
	Start geometry.PointInt `json:"start"`
	End   geometry.PointInt `json:"end"`
	Width int64             `json:"width"`
	Layer Layer             `json:"layer"`
}

// Length returns the track length in millimeters.
func (t Track) Length() float64 {
	return t.Start.ToFloat().Distance(t.End.ToFloat()) / NanometersPerMM
}

// Via is a placed through-hole in board nanometers.
type Via struct {
	Position geometry.PointInt `json:"position"`
	Width    int64             `json:"width"`
	Drill    int64             `json:"drill"`
}

// Layout is the set of board items generated for one coil.
type Layout struct {
	Params  spiral.Params `json:"params"`
	Options Options       `json:"options"`
	Tracks  []Track       `json:"tracks"`
	Via     *Via          `json:"via,omitempty"`
}

// Place generates the coil described by p and maps it onto the board.
// One track joins each pair of consecutive outline points.
func Place(p spiral.Params, opts Options) (*Layout, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	outline, err := p.Path(geometry.Point2D{})
	if err != nil {
		return nil, err
	}
	points := TransformPoints(opts.Transform(), outline)

	layout := &Layout{Params: p, Options: opts}
	width := FromMM(p.TrackWidth)
	if len(points) > 1 {
		layout.Tracks = make([]Track, 0, len(points)-1)
	}
	for i := 0; i < len(points)-1; i++ {
		layout.Tracks = append(layout.Tracks, Track{
			Start: toBoard(points[i]),
			End:   toBoard(points[i+1]),
			Width: width,
			Layer: opts.Layer,
		})
	}

	if opts.CenterVia {
		layout.Via = &Via{
			Position: toBoard(opts.Origin),
			Width:    FromMM(opts.Via.PadDiameter),
			Drill:    FromMM(opts.Via.Drill),
		}
	}
	return layout, nil
}

// TrackLength returns the summed track length in millimeters.
func (l *Layout) TrackLength() float64 {
	var total float64
	for _, t := range l.Tracks {
		total += t.Length()
	}
	return total
}

// Bounds returns the bounding box of all track endpoints in millimeters,
// grown by half the track width.
func (l *Layout) Bounds() geometry.Rect {
	if len(l.Tracks) == 0 {
		return geometry.Rect{X: l.Options.Origin.X, Y: l.Options.Origin.Y}
	}
	pts := make([]geometry.Point2D, 0, len(l.Tracks)+1)
	pts = append(pts, l.Tracks[0].Start.ToFloat().Scale(1.0/NanometersPerMM))
	for _, t := range l.Tracks {
		pts = append(pts, t.End.ToFloat().Scale(1.0/NanometersPerMM))
	}
	return geometry.BoundingBox(pts).Expand(ToMM(l.Tracks[0].Width) / 2)
}

// TransformPoints applies t to every point in a single matrix product.
func TransformPoints(t geometry.AffineTransform, points []geometry.Point2D) []geometry.Point2D {
	n := len(points)
	if n == 0 {
		return nil
	}

	h := mat.NewDense(3, n, nil)
	for i, p := range points {
		h.Set(0, i, p.X)
		h.Set(1, i, p.Y)
		h.Set(2, i, 1)
	}

	var out mat.Dense
	out.Mul(mat.NewDense(3, 3, t.Homogeneous()), h)

	result := make([]geometry.Point2D, n)
	for i := range result {
		result[i] = geometry.Point2D{X: out.At(0, i), Y: out.At(1, i)}
	}
	return result
}

func toBoard(p geometry.Point2D) geometry.PointInt {
	return geometry.PointInt{X: FromMM(p.X), Y: FromMM(p.Y)}
}
