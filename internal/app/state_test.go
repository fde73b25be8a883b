package app

import (
	"testing"

	"spiralgen/internal/board"
	"spiralgen/internal/spiral"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	p, centerVia := s.Coil()
	assert.Equal(t, spiral.DefaultParams(), p)
	assert.False(t, centerVia)

	layout, _ := s.Placed()
	assert.Nil(t, layout)
}

func TestGenerateEmitsPlacement(t *testing.T) {
	s := NewState()
	var got *board.Layout
	s.On(EventCoilPlaced, func(data interface{}) {
		got = data.(*board.Layout)
	})

	p := spiral.DefaultParams().WithShape(spiral.Square).WithTurns(3)
	layout, err := s.Generate(p, false)
	require.NoError(t, err)
	assert.Same(t, layout, got)
	assert.Len(t, layout.Tracks, 12)
	assert.Nil(t, layout.Via)

	placed, est := s.Placed()
	assert.Same(t, layout, placed)
	assert.Equal(t, spiral.Square, est.Shape)
	assert.Greater(t, est.Nanohenries, 0.0)
}

func TestGenerateKeepsLayoutOnError(t *testing.T) {
	s := NewState()
	first, err := s.Generate(spiral.DefaultParams(), true)
	require.NoError(t, err)

	calls := 0
	s.On(EventCoilPlaced, func(interface{}) { calls++ })
	_, err = s.Generate(spiral.DefaultParams().WithTurns(-1), true)
	assert.ErrorIs(t, err, spiral.ErrInvalidParams)
	assert.Zero(t, calls)

	placed, _ := s.Placed()
	assert.Same(t, first, placed)
}

func TestSetParams(t *testing.T) {
	s := NewState()
	var seen spiral.Params
	s.On(EventParamsChanged, func(data interface{}) { seen = data.(spiral.Params) })

	p := spiral.DefaultParams().WithInnerRadius(2)
	s.SetParams(p, false)
	assert.Equal(t, p, seen)

	got, centerVia := s.Coil()
	assert.Equal(t, p, got)
	assert.False(t, centerVia)
}
