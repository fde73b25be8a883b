// Package export writes coil previews as SVG, DXF, PNG or TIFF.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"spiralgen/internal/board"
	"spiralgen/internal/spiral"
	"spiralgen/internal/via"
	"spiralgen/pkg/colorutil"
	"spiralgen/pkg/geometry"
)

var (
	// ErrUnknownFormat is returned for an output name without a supported extension.
	ErrUnknownFormat = errors.New("unknown export format")

	// ErrEmptyDrawing is returned when there is nothing to draw.
	ErrEmptyDrawing = errors.New("empty drawing")
)

// Format is an output file format.
type Format int

const (
	FormatSVG Format = iota
	FormatDXF
	FormatPNG
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatSVG:
		return "svg"
	case FormatDXF:
		return "dxf"
	case FormatPNG:
		return "png"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".svg":
		return FormatSVG, nil
	case ".dxf":
		return FormatDXF, nil
	case ".png":
		return FormatPNG, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Drawing is a coil centerline in millimeters, relative to the coil
// center, plus an optional center via.
type Drawing struct {
	Path       []geometry.Point2D
	TrackWidth float64
	Via        *via.Via
}

// NewDrawing generates the outline of p around the origin.
func NewDrawing(p spiral.Params, centerVia bool, viaParams via.Params) (Drawing, error) {
	if err := p.Validate(); err != nil {
		return Drawing{}, err
	}
	path, err := p.Path(geometry.Point2D{})
	if err != nil {
		return Drawing{}, err
	}
	d := Drawing{Path: path, TrackWidth: p.TrackWidth}
	if centerVia {
		if err := viaParams.Validate(); err != nil {
			return Drawing{}, err
		}
		v := viaParams.At(geometry.Point2D{})
		d.Via = &v
	}
	return d, nil
}

// FromLayout draws placed copper in millimeters relative to the placement
// origin. Rotation applied by the placement is kept.
func FromLayout(l *board.Layout) Drawing {
	origin := l.Options.Origin
	local := func(p geometry.PointInt) geometry.Point2D {
		return p.ToFloat().Scale(1.0 / board.NanometersPerMM).Sub(origin)
	}

	d := Drawing{TrackWidth: l.Params.TrackWidth}
	if len(l.Tracks) > 0 {
		d.Path = make([]geometry.Point2D, 0, len(l.Tracks)+1)
		d.Path = append(d.Path, local(l.Tracks[0].Start))
		for _, t := range l.Tracks {
			d.Path = append(d.Path, local(t.End))
		}
	}
	if v := l.Via; v != nil {
		d.Via = &via.Via{
			Center:      local(v.Position),
			PadDiameter: board.ToMM(v.Width),
			Drill:       board.ToMM(v.Drill),
		}
	}
	return d
}

// Bounds returns the area covered by copper: the centerline grown by half
// the track width, joined with the via pad.
func (d Drawing) Bounds() geometry.Rect {
	var pts []geometry.Point2D
	if len(d.Path) > 0 {
		b := geometry.BoundingBox(d.Path).Expand(d.TrackWidth / 2)
		pts = append(pts, b.TopLeft(), b.BottomRight())
	}
	if d.Via != nil {
		b := d.Via.Bounds()
		pts = append(pts, b.TopLeft(), b.BottomRight())
	}
	return geometry.BoundingBox(pts)
}

// Options controls preview scale and colors.
type Options struct {
	PixelsPerMM float64
	Margin      float64 // mm of background around the copper
	MaxPixels   int     // Upper bound for raster width and height
	Copper      color.Color
	Background  color.Color
	ViaPad      color.Color
	DrillHole   color.Color
}

// DefaultOptions returns a 20 px/mm preview on solder-mask green.
func DefaultOptions() Options {
	return Options{
		PixelsPerMM: 20,
		Margin:      1,
		MaxPixels:   4096,
		Copper:      colorutil.Copper,
		Background:  colorutil.Background,
		ViaPad:      colorutil.ViaPad,
		DrillHole:   colorutil.DrillHole,
	}
}

// viewport maps drawing millimeters onto an output raster.
type viewport struct {
	frame  geometry.Rect
	scale  float64
	width  int
	height int
}

func newViewport(d Drawing, opts Options) (viewport, error) {
	if len(d.Path) == 0 && d.Via == nil {
		return viewport{}, ErrEmptyDrawing
	}
	frame := d.Bounds().Expand(opts.Margin)
	scale := opts.PixelsPerMM
	if scale <= 0 {
		scale = DefaultOptions().PixelsPerMM
	}
	if opts.MaxPixels > 0 {
		longest := math.Max(frame.Width, frame.Height)
		if longest*scale > float64(opts.MaxPixels) {
			scale = float64(opts.MaxPixels) / longest
		}
	}
	return viewport{
		frame:  frame,
		scale:  scale,
		width:  pixels(frame.Width * scale),
		height: pixels(frame.Height * scale),
	}, nil
}

// pixels rounds a raster extent up, ignoring float noise below 1e-6 px.
func pixels(extent float64) int {
	return max(1, int(math.Ceil(extent-1e-6)))
}

func (v viewport) project(p geometry.Point2D) geometry.Point2D {
	return p.Sub(v.frame.TopLeft()).Scale(v.scale)
}

// WriteFile writes d to name in the format implied by its extension.
func WriteFile(name string, d Drawing, opts Options) error {
	format, err := FormatFromPath(name)
	if err != nil {
		return err
	}
	if format == FormatDXF {
		return WriteDXF(name, d)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	switch format {
	case FormatSVG:
		err = WriteSVG(f, d, opts)
	case FormatPNG:
		err = WritePNG(f, d, opts)
	case FormatTIFF:
		err = WriteTIFF(f, d, opts)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
