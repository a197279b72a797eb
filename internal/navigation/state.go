// Package navigation turns held navigation keys into viewport motion.
//
// Six flags follow key presses and releases. Once per frame Tick moves the
// center by the current move speed and scales the half-extents and the speed
// together, so panning covers the same share of the screen at any zoom.
// Motion is per tick, not per second: a faster frame rate moves faster.
package navigation

import (
	"errors"
	"fmt"
	"math"

	"convergence/internal/fractal"
	"convergence/internal/input"
)

const (
	// ZoomFactor scales the half-extents and move speed on each zoom-in tick.
	ZoomFactor = 0.95

	// DefaultMoveSpeed is the distance the center moves per tick at the default zoom.
	DefaultMoveSpeed = 0.04
)

// ErrMoveSpeed is returned for a move speed that is not positive.
var ErrMoveSpeed = errors.New("move speed must be positive")

// DefaultViewport shows the whole set: [-2.5, 1] x [-1, 1].
func DefaultViewport() fractal.Viewport {
	return fractal.Viewport{CX: -0.75, CY: 0, HX: 1.75, HY: 1}
}

// Flags is the set of held navigation keys.
type Flags struct {
	Up, Down, Left, Right bool
	ZoomIn, ZoomOut       bool
}

// Any reports whether any flag is set.
func (f Flags) Any() bool {
	return f.Up || f.Down || f.Left || f.Right || f.ZoomIn || f.ZoomOut
}

func (f *Flags) set(k input.Key, v bool) {
	switch k {
	case input.KeyUp:
		f.Up = v
	case input.KeyDown:
		f.Down = v
	case input.KeyLeft:
		f.Left = v
	case input.KeyRight:
		f.Right = v
	case input.KeyZoomIn:
		f.ZoomIn = v
	case input.KeyZoomOut:
		f.ZoomOut = v
	}
}

// State owns the viewport and move speed. It is not safe for concurrent use.
type State struct {
	view      fractal.Viewport
	moveSpeed float64
	flags     Flags

	initView  fractal.Viewport
	initSpeed float64
}

// New returns a state starting at view with the given move speed.
func New(view fractal.Viewport, moveSpeed float64) (*State, error) {
	view, err := fractal.NewViewport(view.CX, view.CY, view.HX, view.HY)
	if err != nil {
		return nil, fmt.Errorf("navigation: %w", err)
	}
	if !(moveSpeed > 0) {
		return nil, fmt.Errorf("navigation: %w, got %v", ErrMoveSpeed, moveSpeed)
	}
	return &State{
		view:      view,
		moveSpeed: moveSpeed,
		initView:  view,
		initSpeed: moveSpeed,
	}, nil
}

// NewDefault returns a state at the default viewport and move speed.
func NewDefault() *State {
	s, err := New(DefaultViewport(), DefaultMoveSpeed)
	if err != nil {
		panic(err)
	}
	return s
}

// Handle applies one input event. Pressing the reset key returns to the
// starting view. Window close and unknown keys are ignored.
func (s *State) Handle(e input.Event) {
	if e.Kind != input.KeyChange {
		return
	}
	if e.Key == input.KeyReset {
		if e.Pressed {
			s.Reset()
		}
		return
	}
	s.flags.set(e.Key, e.Pressed)
}

// Tick advances the viewport by one frame according to the held flags.
func (s *State) Tick() {
	if s.flags.Right {
		s.view.CX += s.moveSpeed
	}
	if s.flags.Left {
		s.view.CX -= s.moveSpeed
	}
	if s.flags.Up {
		s.view.CY += s.moveSpeed
	}
	if s.flags.Down {
		s.view.CY -= s.moveSpeed
	}
	if s.flags.ZoomIn {
		s.view.HX *= ZoomFactor
		s.view.HY *= ZoomFactor
		s.moveSpeed *= ZoomFactor
	}
	if s.flags.ZoomOut {
		hx, hy, speed := s.view.HX/ZoomFactor, s.view.HY/ZoomFactor, s.moveSpeed/ZoomFactor
		// Stop zooming out once the extents would overflow.
		if finite(hx) && finite(hy) && finite(speed) {
			s.view.HX, s.view.HY, s.moveSpeed = hx, hy, speed
		}
	}
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Reset returns to the starting viewport and move speed. Held flags are kept.
func (s *State) Reset() {
	s.view = s.initView
	s.moveSpeed = s.initSpeed
}

// Viewport returns the current viewport.
func (s *State) Viewport() fractal.Viewport {
	return s.view
}

// MoveSpeed returns the distance the center moves per tick.
func (s *State) MoveSpeed() float64 {
	return s.moveSpeed
}

// Flags returns the held flags.
func (s *State) Flags() Flags {
	return s.flags
}

// Moving reports whether any navigation key is held.
func (s *State) Moving() bool {
	return s.flags.Any()
}

// Zoom returns the magnification relative to the starting viewport.
func (s *State) Zoom() float64 {
	return s.initView.HX / s.view.HX
}
