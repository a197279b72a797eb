// Package frame renders the fractal into color buffers and drives the
// poll, tick, render and present loop.
package frame

import (
	"context"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"convergence/internal/fractal"
	"convergence/internal/palette"
)

// bandHeight is the number of rows one worker renders before picking up the next band.
const bandHeight = 16

// Renderer evaluates every pixel of a color buffer independently.
type Renderer struct {
	Colorizer palette.Colorizer
	// Workers limits concurrent bands. Zero means GOMAXPROCS.
	Workers int
}

// NewRenderer returns a renderer using fractal.MaxIterations.
func NewRenderer(p palette.Palette, mode palette.Mode) *Renderer {
	return &Renderer{
		Colorizer: palette.Colorizer{
			Palette:       p,
			Mode:          mode,
			MaxIterations: fractal.MaxIterations,
		},
	}
}

// Pixel returns the color of pixel (px, py) on a width x height screen showing view.
func (r *Renderer) Pixel(view fractal.Viewport, px, py, width, height int) (uint8, uint8, uint8) {
	nx, ny := fractal.PixelToNormalized(px, py, width, height)
	c := r.Colorizer.Color(fractal.Evaluate(view.MapToComplexPlane(nx, ny), r.Colorizer.MaxIterations))
	return c.R, c.G, c.B
}

// Render fills dst with view. Rows are split into bands rendered in parallel;
// pixels never read each other, so the result does not depend on scheduling.
func (r *Renderer) Render(ctx context.Context, view fractal.Viewport, dst *image.RGBA) error {
	b := dst.Bounds()
	width, height := b.Dx(), b.Dy()

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y0 := 0; y0 < height; y0 += bandHeight {
		if ctx.Err() != nil {
			break
		}
		y0 := y0
		y1 := min(y0+bandHeight, height)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for py := y0; py < y1; py++ {
				row := dst.Pix[py*dst.Stride : py*dst.Stride+width*4]
				for px := 0; px < width; px++ {
					i := px * 4
					row[i], row[i+1], row[i+2] = r.Pixel(view, px, py, width, height)
					row[i+3] = 0xff
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
