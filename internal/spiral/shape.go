// Package spiral generates the outline of planar spiral coils.
package spiral

import (
	"fmt"
	"strings"
)

// ShapeKind selects the outline of a spiral coil.
type ShapeKind int

const (
	Circular  ShapeKind = iota // Archimedean spiral sampled densely
	Square                     // 4-sided polygon spiral
	Octagonal                  // 8-sided polygon spiral
)

func (s ShapeKind) String() string {
	switch s {
	case Circular:
		return "Circular"
	case Square:
		return "Square"
	case Octagonal:
		return "Octagonal"
	default:
		return "Unknown"
	}
}

// Known reports whether s is one of the named shapes.
func (s ShapeKind) Known() bool {
	return s == Circular || s == Square || s == Octagonal
}

// SegmentsPerTurn returns the number of straight segments used to
// approximate one full turn. Unknown shapes return 0.
func (s ShapeKind) SegmentsPerTurn() int {
	switch s {
	case Circular:
		return 64
	case Square:
		return 4
	case Octagonal:
		return 8
	default:
		return 0
	}
}

// Shapes returns the named shapes in dialog order.
func Shapes() []ShapeKind {
	return []ShapeKind{Circular, Square, Octagonal}
}

// ShapeNames returns the display names of Shapes.
func ShapeNames() []string {
	shapes := Shapes()
	names := make([]string, len(shapes))
	for i, s := range shapes {
		names[i] = s.String()
	}
	return names
}

// ParseShape maps a shape name to a ShapeKind. Matching is
// case-insensitive and accepts "circ", "sq" and "oct" as short forms.
func ParseShape(name string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circular", "circle", "circ":
		return Circular, nil
	case "square", "sq":
		return Square, nil
	case "octagonal", "octagon", "oct":
		return Octagonal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s ShapeKind) MarshalText() ([]byte, error) {
	if !s.Known() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ShapeKind) UnmarshalText(text []byte) error {
	k, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = k
	return nil
}
