package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"spiralgen/pkg/geometry"

	"golang.org/x/image/tiff"
	"golang.org/x/image/vector"
)

// jointSides is the polygon resolution of round track joints.
const jointSides = 16

// Render rasterizes d: every segment is filled as a quad of the track
// width with round joints, then the via pad and drill are drawn on top.
func Render(d Drawing, opts Options) (*image.RGBA, error) {
	vp, err := newViewport(d, opts)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, vp.width, vp.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	if len(d.Path) > 0 {
		hw := d.TrackWidth / 2 * vp.scale
		z := vector.NewRasterizer(vp.width, vp.height)
		prev := vp.project(d.Path[0])
		addPolygon(z, circle(prev, hw))
		for _, p := range d.Path[1:] {
			cur := vp.project(p)
			if q := segmentQuad(prev, cur, hw); q != nil {
				addPolygon(z, q)
			}
			addPolygon(z, circle(cur, hw))
			prev = cur
		}
		z.Draw(img, img.Bounds(), image.NewUniform(opts.Copper), image.Point{})
	}

	if v := d.Via; v != nil {
		c := vp.project(v.Center)
		fillPolygon(img, vp, circle(c, v.Radius()*vp.scale), opts.ViaPad)
		fillPolygon(img, vp, circle(c, v.Drill/2*vp.scale), opts.DrillHole)
	}
	return img, nil
}

// WritePNG renders d and encodes it as PNG.
func WritePNG(w io.Writer, d Drawing, opts Options) error {
	img, err := Render(d, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WriteTIFF renders d and encodes it as TIFF.
func WriteTIFF(w io.Writer, d Drawing, opts Options) error {
	img, err := Render(d, opts)
	if err != nil {
		return err
	}
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func fillPolygon(img *image.RGBA, vp viewport, poly []geometry.Point2D, c color.Color) {
	z := vector.NewRasterizer(vp.width, vp.height)
	addPolygon(z, poly)
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

// addPolygon adds poly with positive orientation so overlapping shapes
// accumulate coverage instead of cancelling.
func addPolygon(z *vector.Rasterizer, poly []geometry.Point2D) {
	if len(poly) < 3 {
		return
	}
	if signedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

func segmentQuad(a, b geometry.Point2D, hw float64) []geometry.Point2D {
	dir := b.Sub(a)
	length := dir.Length()
	if length == 0 {
		return nil
	}
	n := geometry.Point2D{X: -dir.Y, Y: dir.X}.Scale(hw / length)
	return []geometry.Point2D{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}

func circle(c geometry.Point2D, r float64) []geometry.Point2D {
	pts := make([]geometry.Point2D, jointSides)
	for i := range pts {
		pts[i] = c.Add(geometry.Polar(r, 2*math.Pi*float64(i)/jointSides))
	}
	return pts
}

func signedArea(poly []geometry.Point2D) float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
