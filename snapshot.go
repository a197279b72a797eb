package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/spf13/cobra"

	"convergence/internal/frame"
	"convergence/internal/input"
)

func snapshotCmd(opts *options) *cobra.Command {
	out := "convergence.png"

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame to a PNG file without opening a window",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return snapshot(cmd, opts, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", out, "output PNG file")
	opts.addViewFlags(cmd.Flags())

	return cmd
}

func snapshot(cmd *cobra.Command, opts *options, out string) error {
	nav, err := opts.navigation()
	if err != nil {
		return err
	}
	r, err := opts.renderer()
	if err != nil {
		return err
	}

	d, err := frame.NewDriver(nav, r, singleFrame{}, pngPresenter{path: out}, opts.width, opts.height)
	if err != nil {
		return err
	}
	if err := d.Run(cmd.Context()); err != nil {
		return err
	}

	lo, hi := d.Viewport().Bounds()
	log.Printf("frame of [%g, %g] x [%g, %g] saved to %q", lo.X, hi.X, lo.Y, hi.Y, out)
	return nil
}

// singleFrame asks the driver to stop after its first frame.
type singleFrame struct{}

func (singleFrame) PollEvents() []input.Event { return []input.Event{input.Close()} }

// pngPresenter writes each presented frame to path.
type pngPresenter struct {
	path string
}

func (p pngPresenter) Present(buf *image.RGBA) (err error) {
	f, err := os.Create(p.path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := png.Encode(f, buf); err != nil {
		return fmt.Errorf("encode %s: %w", p.path, err)
	}
	return nil
}
