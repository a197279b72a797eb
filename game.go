package main

import (
	"context"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"convergence/internal/frame"
	"convergence/internal/hud"
)

// Game adapts the frame driver to Ebitengine's Update/Draw loop.
type Game struct {
	driver    *frame.Driver
	offscreen *ebiten.Image
	overlay   hud.Overlay
	width     int
	height    int
}

// screenPresenter uploads finished frames into the image Draw shows.
type screenPresenter struct {
	img *ebiten.Image
}

func (p screenPresenter) Present(buf *image.RGBA) error {
	p.img.WritePixels(buf.Pix)
	return nil
}

// NewGame wires a driver that polls events from src and renders width x height frames.
func NewGame(opts *options, src frame.EventSource) (*Game, error) {
	nav, err := opts.navigation()
	if err != nil {
		return nil, err
	}
	r, err := opts.renderer()
	if err != nil {
		return nil, err
	}

	offscreen := ebiten.NewImage(opts.width, opts.height)
	d, err := frame.NewDriver(nav, r, src, screenPresenter{img: offscreen}, opts.width, opts.height)
	if err != nil {
		return nil, err
	}

	return &Game{
		driver:    d,
		offscreen: offscreen,
		overlay:   hud.Overlay{Visible: opts.hud, X: 4, Y: 4},
		width:     opts.width,
		height:    opts.height,
	}, nil
}

// Update: one frame of input, navigation and rendering (60 TPS)
func (g *Game) Update() error {
	closed, err := g.driver.Step(context.Background())
	if err != nil {
		return err
	}
	if closed {
		log.Printf("window closed after %d frames", g.driver.Frames())
		return ebiten.Termination
	}
	return nil
}

// Draw: show the latest presented frame (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.offscreen, nil)
	g.overlay.Draw(screen, g.driver.Navigation())
}

// Layout: render at the configured size, let Ebiten scale it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
