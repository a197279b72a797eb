package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"convergence/internal/input"
)

// The original window: square, 720 pixels.
const (
	ScreenWidth  = 720
	ScreenHeight = 720
	WindowTitle  = "Convergence"
)

func mainCmd() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "convergence",
		Short: "Explore the Mandelbrot set: arrow keys pan, Z zooms in, X zooms out, R resets",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts, navigationKeys)
		},
	}
	opts.addFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Open the interactive window (default)",
			Args:  cobra.ExactArgs(0),
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runInteractive(cmd, opts, navigationKeys)
			},
		},
		&cobra.Command{
			Use:   "static",
			Short: "Show the default view with navigation disabled",
			Args:  cobra.ExactArgs(0),
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runInteractive(cmd, opts, map[ebiten.Key]input.Key{})
			},
		},
		snapshotCmd(opts),
	)

	return cmd
}

func runInteractive(cmd *cobra.Command, opts *options, bindings map[ebiten.Key]input.Key) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	// 1. Window Setup
	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowTitle(opts.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	// 2. Initialize Game
	game, err := NewGame(opts, newKeyPoller(bindings))
	if err != nil {
		return err
	}
	log.Printf("rendering %dx%d, palette %q, %s color mode", opts.width, opts.height, opts.palette, opts.colorMode)

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
