package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"convergence/internal/input"
)

// navigationKeys binds physical keys to navigation keys.
var navigationKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyZ:          input.KeyZoomIn,
	ebiten.KeyX:          input.KeyZoomOut,
	ebiten.KeyR:          input.KeyReset,
}

// keyPoller turns this tick's key edges and window state into input events.
type keyPoller struct {
	bindings map[ebiten.Key]input.Key
	keys     []ebiten.Key
}

func newKeyPoller(bindings map[ebiten.Key]input.Key) *keyPoller {
	return &keyPoller{bindings: bindings}
}

// PollEvents reports releases before presses, then a close request.
func (p *keyPoller) PollEvents() []input.Event {
	var events []input.Event

	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if nk, ok := p.bindings[k]; ok {
			events = append(events, input.Release(nk))
		}
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if nk, ok := p.bindings[k]; ok {
			events = append(events, input.Press(nk))
		}
	}

	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, input.Close())
	}
	return events
}
