// Package inductance estimates the self-inductance of planar spiral coils
// with the modified Wheeler (Mohan current-sheet) expression:
//
//	L = K1 * mu0 * n^2 * d_avg / (1 + K2 * rho)
package inductance

import (
	"fmt"
	"math"

	"spiralgen/internal/spiral"
)

// MagneticConstant is the vacuum permeability mu0 in H/m.
const MagneticConstant = 4 * math.Pi * 1e-7

const (
	nanohenriesPerHenry = 1e9
	metersPerMicrometer = 1e-6
	micrometersPerMM    = 1000
)

// Coefficients are the shape-dependent K1, K2 of the current-sheet model.
type Coefficients struct {
	K1 float64 `json:"k1"`
	K2 float64 `json:"k2"`
}

// FallbackCoefficients apply to any shape without its own entry.
var FallbackCoefficients = Coefficients{K1: 2.25, K2: 3.55}

// CoefficientsFor returns K1, K2 for shape. Circular coils reuse the
// octagonal pair as an approximation; unrecognized shapes get
// FallbackCoefficients rather than an error.
func CoefficientsFor(shape spiral.ShapeKind) Coefficients {
	switch shape {
	case spiral.Square:
		return Coefficients{K1: 2.34, K2: 2.75}
	case spiral.Octagonal:
		return Coefficients{K1: 2.25, K2: 3.55}
	case spiral.Circular:
		return Coefficients{K1: 2.25, K2: 3.55}
	default:
		return FallbackCoefficients
	}
}

// Estimate returns the inductance in nanohenries of a coil with the given
// turn count, average diameter in micrometers and fill ratio. A
// non-positive diameter describes no coil and yields 0.
func Estimate(shape spiral.ShapeKind, turns, averageDiameterMicrometers, fillRatio float64) float64 {
	c := CoefficientsFor(shape)

	dAvg := averageDiameterMicrometers * metersPerMicrometer
	if dAvg <= 0 {
		return 0
	}

	num := c.K1 * MagneticConstant * (turns * turns) * dAvg
	den := 1 + c.K2*fillRatio
	return num / den * nanohenriesPerHenry
}

// Result is an inductance estimate together with the quantities it was
// derived from.
type Result struct {
	Shape        spiral.ShapeKind  `json:"shape"`
	Turns        float64           `json:"turns"`
	Dimensions   spiral.Dimensions `json:"dimensions_mm"`
	Coefficients Coefficients      `json:"coefficients"`
	Nanohenries  float64           `json:"nanohenries"`
}

// FromParams derives the coil diameters from p (lengths in millimeters)
// and estimates its inductance.
func FromParams(p spiral.Params) Result {
	d := p.Dimensions()
	return Result{
		Shape:        p.Shape,
		Turns:        p.Turns,
		Dimensions:   d,
		Coefficients: CoefficientsFor(p.Shape),
		Nanohenries:  Estimate(p.Shape, p.Turns, d.AverageDiameter*micrometersPerMM, d.FillRatio),
	}
}

// Microhenries returns the estimate in microhenries.
func (r Result) Microhenries() float64 {
	return r.Nanohenries / 1000
}

// String formats the estimate the way the coil dialog labels it.
func (r Result) String() string {
	return fmt.Sprintf("Estimated L: %.2f nH", r.Nanohenries)
}
