package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"convergence/internal/assets"
	"convergence/internal/fractal"
	"convergence/internal/frame"
	"convergence/internal/navigation"
	"convergence/internal/palette"
)

// options are the flags shared by every command.
type options struct {
	width, height int
	colorMode     string
	palette       string
	hud           bool
	title         string

	view fractal.Viewport
}

func defaultOptions() *options {
	return &options{
		width:     ScreenWidth,
		height:    ScreenHeight,
		colorMode: palette.Linear.String(),
		palette:   assets.DefaultPalette,
		title:     WindowTitle,
		view:      navigation.DefaultViewport(),
	}
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.width, "width", o.width, "frame width in pixels")
	fs.IntVar(&o.height, "height", o.height, "frame height in pixels")
	fs.StringVar(&o.colorMode, "color-mode", o.colorMode, "iteration to color mapping: linear or log")
	fs.StringVar(&o.palette, "palette", o.palette, fmt.Sprintf("palette preset %v", assets.Names()))
	fs.BoolVar(&o.hud, "hud", o.hud, "show the viewport readout")
	fs.StringVar(&o.title, "title", o.title, "window title")
}

func (o *options) addViewFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&o.view.CX, "center-x", o.view.CX, "real part of the view center")
	fs.Float64Var(&o.view.CY, "center-y", o.view.CY, "imaginary part of the view center")
	fs.Float64Var(&o.view.HX, "half-width", o.view.HX, "half of the view's real extent")
	fs.Float64Var(&o.view.HY, "half-height", o.view.HY, "half of the view's imaginary extent")
}

func (o *options) renderer() (*frame.Renderer, error) {
	mode, err := palette.ParseMode(o.colorMode)
	if err != nil {
		return nil, err
	}
	p, err := assets.Palette(o.palette)
	if err != nil {
		return nil, err
	}
	return frame.NewRenderer(p, mode), nil
}

func (o *options) navigation() (*navigation.State, error) {
	return navigation.New(o.view, navigation.DefaultMoveSpeed)
}
