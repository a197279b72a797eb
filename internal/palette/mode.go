package palette

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"convergence/internal/fractal"
)

// Mode selects how an iteration count is turned into a palette position.
type Mode int

const (
	// Linear maps N to N / max.
	Linear Mode = iota
	// Logarithmic maps N to log(N) / log(max).
	Logarithmic
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Logarithmic:
		return "log"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the command line spelling of a color mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "linear", "lin":
		return Linear, nil
	case "log", "logarithmic":
		return Logarithmic, nil
	}
	return 0, fmt.Errorf("unknown color mode %q (want linear or log)", s)
}

// Position maps an evaluation result onto [0, 1].
//
// Bounded results sit at 1.0, on the palette's last control point. In
// logarithmic mode N is clamped to at least 1, so an escape at iteration 0
// lands on 0.0.
func (m Mode) Position(r fractal.Result, max int) float64 {
	if r.Bounded || max <= 1 {
		return 1
	}
	switch m {
	case Logarithmic:
		n := r.N
		if n < 1 {
			n = 1
		}
		return math.Log(float64(n)) / math.Log(float64(max))
	default:
		return float64(r.N) / float64(max)
	}
}

// Colorizer colors evaluation results with a fixed palette, mode and iteration budget.
type Colorizer struct {
	Palette       Palette
	Mode          Mode
	MaxIterations int
}

// Color returns the display color of r.
func (c Colorizer) Color(r fractal.Result) color.RGBA {
	return c.Palette.Sample(c.Mode.Position(r, c.MaxIterations)).RGBA8()
}
