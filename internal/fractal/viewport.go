package fractal

import (
	"errors"
	"fmt"
	"math"
)

// ErrExtent is returned when a viewport is built with a half-extent that is
// not a positive, finite number.
var ErrExtent = errors.New("half-extent must be positive and finite")

// Point is a point of the complex plane, X the real part and Y the imaginary part.
type Point struct {
	X, Y float64
}

// Viewport is the rectangle [CX-HX, CX+HX] x [CY-HY, CY+HY] of the complex
// plane currently mapped onto the screen.
type Viewport struct {
	CX, CY float64
	HX, HY float64
}

// NewViewport returns a viewport centered on (cx, cy) with half-extents hx and hy.
func NewViewport(cx, cy, hx, hy float64) (Viewport, error) {
	if !validExtent(hx) {
		return Viewport{}, fmt.Errorf("horizontal %w, got %v", ErrExtent, hx)
	}
	if !validExtent(hy) {
		return Viewport{}, fmt.Errorf("vertical %w, got %v", ErrExtent, hy)
	}
	return Viewport{CX: cx, CY: cy, HX: hx, HY: hy}, nil
}

// MustViewport is like NewViewport but panics on invalid extents.
func MustViewport(cx, cy, hx, hy float64) Viewport {
	v, err := NewViewport(cx, cy, hx, hy)
	if err != nil {
		panic(err)
	}
	return v
}

func validExtent(h float64) bool {
	return h > 0 && !math.IsInf(h, 0) && !math.IsNaN(h)
}

// MapToComplexPlane linearly rescales normalized screen coordinates in [-1, 1]
// onto the viewport. Inputs outside that range are not clamped.
func (v Viewport) MapToComplexPlane(nx, ny float64) Point {
	return Point{
		X: v.CX + nx*v.HX,
		Y: v.CY + ny*v.HY,
	}
}

// Bounds returns the lower-left and upper-right corners of the viewport.
func (v Viewport) Bounds() (lo, hi Point) {
	return Point{X: v.CX - v.HX, Y: v.CY - v.HY}, Point{X: v.CX + v.HX, Y: v.CY + v.HY}
}

// PixelToNormalized returns the normalized coordinates of the center of pixel
// (px, py) on a width x height grid. Row 0 is the top of the screen, so y
// grows upward as on a GL surface.
func PixelToNormalized(px, py, width, height int) (nx, ny float64) {
	nx = (float64(px)+0.5)/float64(width)*2 - 1
	ny = 1 - (float64(py)+0.5)/float64(height)*2
	return nx, ny
}
