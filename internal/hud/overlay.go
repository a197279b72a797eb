// Package hud draws a text readout of the current view over the fractal.
package hud

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"convergence/internal/navigation"
)

// Overlay is the on-screen readout. The zero value is hidden.
type Overlay struct {
	Visible bool
	X, Y    int
}

// Text formats the readout for nav.
func Text(nav *navigation.State, fps float64) string {
	v := nav.Viewport()
	lo, hi := v.Bounds()
	status := "IDLE"
	if nav.Moving() {
		status = "MOVING"
	}
	return fmt.Sprintf("%s  %.1f fps\ncenter % .12g % .12g\nrange  [% .6g, % .6g] x [% .6g, % .6g]\nzoom   %.4gx  step %.3g",
		status, fps,
		v.CX, v.CY,
		lo.X, hi.X, lo.Y, hi.Y,
		nav.Zoom(), nav.MoveSpeed())
}

// Draw prints the readout in the overlay's corner when visible.
func (o *Overlay) Draw(screen *ebiten.Image, nav *navigation.State) {
	if !o.Visible {
		return
	}
	ebitenutil.DebugPrintAt(screen, Text(nav, ebiten.ActualFPS()), o.X, o.Y)
}
