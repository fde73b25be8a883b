package spiral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentsPerTurn(t *testing.T) {
	assert.Equal(t, 64, Circular.SegmentsPerTurn())
	assert.Equal(t, 4, Square.SegmentsPerTurn())
	assert.Equal(t, 8, Octagonal.SegmentsPerTurn())
	assert.Equal(t, 0, ShapeKind(-1).SegmentsPerTurn())
}

func TestParseShape(t *testing.T) {
	tests := map[string]ShapeKind{
		"Circular":    Circular,
		"circ":        Circular,
		" SQUARE ":    Square,
		"sq":          Square,
		"Octagonal":   Octagonal,
		"oct":         Octagonal,
		"octagon":     Octagonal,
		"circle":      Circular,
		"Octagonal\n": Octagonal,
	}
	for in, want := range tests {
		got, err := ParseShape(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseShape("Hexagonal")
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestShapeNamesRoundTrip(t *testing.T) {
	assert.Equal(t, []string{"Circular", "Square", "Octagonal"}, ShapeNames())
	for _, name := range ShapeNames() {
		s, err := ParseShape(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}
	assert.Equal(t, "Unknown", ShapeKind(7).String())
	assert.False(t, ShapeKind(7).Known())
}
