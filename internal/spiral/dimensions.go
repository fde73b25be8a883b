package spiral

// Dimensions are the aggregate diameters of a coil as used by the
// current-sheet inductance model. Units follow Params.
type Dimensions struct {
	InnerDiameter   float64 `json:"inner_diameter"`
	OuterDiameter   float64 `json:"outer_diameter"`
	AverageDiameter float64 `json:"average_diameter"`
	FillRatio       float64 `json:"fill_ratio"` // (d_out - d_in) / (d_out + d_in)
}

// Dimensions derives the coil diameters from the winding parameters.
// The outer diameter assumes every turn adds one pitch to the radius,
// regardless of shape.
func (p Params) Dimensions() Dimensions {
	dIn := p.InnerRadius * 2
	dOut := dIn + 2*(p.Turns*p.Pitch())

	d := Dimensions{
		InnerDiameter:   dIn,
		OuterDiameter:   dOut,
		AverageDiameter: (dOut + dIn) / 2,
	}
	if sum := dOut + dIn; sum > 0 {
		d.FillRatio = (dOut - dIn) / sum
	}
	return d
}
