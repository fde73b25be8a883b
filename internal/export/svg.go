package export

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"spiralgen/pkg/colorutil"

	svg "github.com/ajstarks/svgo"
)

// svgUnitsPerMM sets the SVG user unit to one micrometer.
const svgUnitsPerMM = 1000

// WriteSVG writes d as an SVG document: the path as one stroked polyline
// and the via as a pad with its drill hole. The viewBox is in micrometers;
// the document size follows opts.PixelsPerMM.
func WriteSVG(w io.Writer, d Drawing, opts Options) error {
	vp, err := newViewport(d, opts)
	if err != nil {
		return err
	}
	um := func(v float64) int { return int(math.Round(v * svgUnitsPerMM)) }

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(vp.width, vp.height,
		um(vp.frame.X), um(vp.frame.Y), um(vp.frame.Width), um(vp.frame.Height))
	canvas.Rect(um(vp.frame.X), um(vp.frame.Y), um(vp.frame.Width), um(vp.frame.Height),
		"fill:"+colorutil.Hex(opts.Background))

	if len(d.Path) > 0 {
		xs := make([]int, len(d.Path))
		ys := make([]int, len(d.Path))
		for i, p := range d.Path {
			xs[i] = um(p.X)
			ys[i] = um(p.Y)
		}
		canvas.Polyline(xs, ys, fmt.Sprintf(
			"fill:none;stroke:%s;stroke-width:%d;stroke-linejoin:round;stroke-linecap:round",
			colorutil.Hex(opts.Copper), um(d.TrackWidth)))
	}

	if v := d.Via; v != nil {
		cx, cy := um(v.Center.X), um(v.Center.Y)
		canvas.Circle(cx, cy, um(v.Radius()), "fill:"+colorutil.Hex(opts.ViaPad))
		canvas.Circle(cx, cy, um(v.Drill/2), "fill:"+colorutil.Hex(opts.DrillHole))
	}
	canvas.End()

	_, err = w.Write(buf.Bytes())
	return err
}
