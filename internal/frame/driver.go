package frame

import (
	"context"
	"fmt"
	"image"

	"convergence/internal/fractal"
	"convergence/internal/input"
	"convergence/internal/navigation"
)

// EventSource returns the input events queued since the previous call. It
// must not block.
type EventSource interface {
	PollEvents() []input.Event
}

// Presenter displays a finished color buffer. The buffer is only valid until
// Present returns.
type Presenter interface {
	Present(buf *image.RGBA) error
}

// Driver runs one frame at a time: poll, handle, tick, render, present.
type Driver struct {
	nav       *navigation.State
	renderer  *Renderer
	events    EventSource
	presenter Presenter

	buf *image.RGBA
	// last is the viewport buf currently shows, valid once rendered is set.
	last     fractal.Viewport
	rendered bool

	frames  int
	renders int
}

// NewDriver returns a driver rendering width x height frames.
func NewDriver(nav *navigation.State, r *Renderer, events EventSource, p Presenter, width, height int) (*Driver, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame size %dx%d must be positive", width, height)
	}
	return &Driver{
		nav:       nav,
		renderer:  r,
		events:    events,
		presenter: p,
		buf:       image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// Step runs one frame. closed reports that a window close event arrived; the
// frame is still rendered and presented before Step returns. When the
// viewport has not moved since the last frame the previous buffer is
// presented again without re-evaluating it.
func (d *Driver) Step(ctx context.Context) (closed bool, err error) {
	for _, e := range d.events.PollEvents() {
		if e.Kind == input.WindowClose {
			closed = true
			continue
		}
		d.nav.Handle(e)
	}
	d.nav.Tick()

	view := d.nav.Viewport()
	if !d.rendered || view != d.last {
		d.rendered = false
		if err := d.renderer.Render(ctx, view, d.buf); err != nil {
			return closed, fmt.Errorf("render frame %d: %w", d.frames, err)
		}
		d.last, d.rendered = view, true
		d.renders++
	}
	if err := d.presenter.Present(d.buf); err != nil {
		return closed, fmt.Errorf("present frame %d: %w", d.frames, err)
	}
	d.frames++
	return closed, nil
}

// Run steps until a close event arrives, a step fails or ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		closed, err := d.Step(ctx)
		if err != nil {
			return err
		}
		if closed {
			return nil
		}
	}
}

// Viewport returns the viewport of the latest tick.
func (d *Driver) Viewport() fractal.Viewport {
	return d.nav.Viewport()
}

// Navigation returns the driven navigation state.
func (d *Driver) Navigation() *navigation.State {
	return d.nav
}

// Frames returns the number of frames presented so far.
func (d *Driver) Frames() int {
	return d.frames
}

// Renders returns the number of frames whose pixels were evaluated.
func (d *Driver) Renders() int {
	return d.renders
}
