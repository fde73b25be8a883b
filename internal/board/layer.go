// Package board converts generated coil outlines into copper items on a
// host board: integer nanometer coordinates, tracks and a center via.
package board

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// NanometersPerMM is the board's internal resolution.
const NanometersPerMM = 1_000_000

// FromMM converts millimeters to board nanometers, rounding to nearest.
func FromMM(mm float64) int64 {
	return int64(math.Round(mm * NanometersPerMM))
}

// ToMM converts board nanometers to millimeters.
func ToMM(nm int64) float64 {
	return float64(nm) / NanometersPerMM
}

// ErrInvalidLayer is returned for a layer name that is not a copper layer.
var ErrInvalidLayer = errors.New("invalid copper layer")

// Layer names a copper layer.
type Layer string

const (
	FrontCopper Layer = "F.Cu"
	BackCopper  Layer = "B.Cu"
)

// maxInnerLayers bounds In1.Cu..In30.Cu.
const maxInnerLayers = 30

// Valid reports whether l names a copper layer.
func (l Layer) Valid() bool {
	if l == FrontCopper || l == BackCopper {
		return true
	}
	var n int
	if _, err := fmt.Sscanf(string(l), "In%d.Cu", &n); err != nil {
		return false
	}
	return n >= 1 && n <= maxInnerLayers && string(l) == fmt.Sprintf("In%d.Cu", n)
}

// ParseLayer accepts a layer name, case-insensitively, plus "front"/"back".
func ParseLayer(name string) (Layer, error) {
	s := strings.TrimSpace(name)
	switch strings.ToLower(s) {
	case "front", "top", "f.cu":
		return FrontCopper, nil
	case "back", "bottom", "b.cu":
		return BackCopper, nil
	}
	if strings.HasPrefix(strings.ToLower(s), "in") && strings.HasSuffix(strings.ToLower(s), ".cu") {
		l := Layer("In" + s[2:len(s)-3] + ".Cu")
		if l.Valid() {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLayer, name)
}
