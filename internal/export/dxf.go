package export

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// WriteDXF saves the coil centerline to filename as DXF line entities.
// The via, if any, becomes a circle of the pad diameter. Coordinates are
// millimeters relative to the coil center.
func WriteDXF(filename string, d Drawing) error {
	if len(d.Path) == 0 && d.Via == nil {
		return ErrEmptyDrawing
	}

	dxf := render.NewDXF(filename)
	dxf.Lines(centerline(d))
	if v := d.Via; v != nil {
		dxf.Points(v2.VecSet{{X: v.Center.X, Y: v.Center.Y}}, v.Radius())
	}
	return dxf.Save()
}

// centerline returns one segment per pair of consecutive path points.
func centerline(d Drawing) []*sdf.Line2 {
	if len(d.Path) < 2 {
		return nil
	}
	lines := make([]*sdf.Line2, 0, len(d.Path)-1)
	for i := 1; i < len(d.Path); i++ {
		a, b := d.Path[i-1], d.Path[i]
		lines = append(lines, &sdf.Line2{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}})
	}
	return lines
}
