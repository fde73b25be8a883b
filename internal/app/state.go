// Package app provides application state and events for the desktop front end.
package app

import (
	"fmt"
	"sync"

	"spiralgen/internal/board"
	"spiralgen/internal/inductance"
	"spiralgen/internal/spiral"
)

// State holds the coil being edited and the last placement made from it.
type State struct {
	mu sync.RWMutex

	// Coil
	Params    spiral.Params
	CenterVia bool

	// Placement
	Placement board.Options
	Layout    *board.Layout
	Estimate  inductance.Result

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventParamsChanged EventType = iota
	EventCoilPlaced
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state seeded with the dialog defaults.
func NewState() *State {
	return &State{
		Params:    spiral.DefaultParams(),
		Placement: board.DefaultOptions(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Coil returns the current parameters and center via choice.
func (s *State) Coil() (spiral.Params, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Params, s.CenterVia
}

// SetParams replaces the coil parameters and emits EventParamsChanged.
func (s *State) SetParams(p spiral.Params, centerVia bool) {
	s.mu.Lock()
	s.Params = p
	s.CenterVia = centerVia
	s.mu.Unlock()
	s.Emit(EventParamsChanged, p)
}

// Generate places the coil on the board and emits EventCoilPlaced with the
// resulting layout. The previous layout is kept when placement fails.
func (s *State) Generate(p spiral.Params, centerVia bool) (*board.Layout, error) {
	s.mu.RLock()
	opts := s.Placement.WithCenterVia(centerVia)
	s.mu.RUnlock()

	layout, err := board.Place(p, opts)
	if err != nil {
		return nil, fmt.Errorf("place coil: %w", err)
	}

	s.mu.Lock()
	s.Params = p
	s.CenterVia = centerVia
	s.Layout = layout
	s.Estimate = inductance.FromParams(p)
	s.mu.Unlock()

	s.Emit(EventCoilPlaced, layout)
	return layout, nil
}

// Placed returns the last layout and its estimate, or nil before the first
// successful Generate.
func (s *State) Placed() (*board.Layout, inductance.Result) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Layout, s.Estimate
}
