// Package palette turns escape-time results into colors.
//
// A Palette is an ordered list of control points spread evenly over [0, 1].
// Sampling a position linearly interpolates between the two nearest points.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var (
	// ErrEmpty is returned when a palette has no control points.
	ErrEmpty = errors.New("palette has no control points")

	// ErrChannel is returned when a control point channel is outside [0, 1].
	ErrChannel = errors.New("color channel outside [0, 1]")
)

// Color is a linear RGB color with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// RGBA implements color.Color. Colors are opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return toUint16(c.R), toUint16(c.G), toUint16(c.B), 0xffff
}

// RGBA8 converts c to an 8-bit opaque color.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{R: toUint8(c.R), G: toUint8(c.G), B: toUint8(c.B), A: 0xff}
}

func toUint16(v float64) uint32 {
	return uint32(math.Round(clamp01(v) * 0xffff))
}

func toUint8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 0xff))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Palette is an immutable ordered set of control points.
type Palette struct {
	points []Color
}

// New builds a palette from its control points, first at position 0 and last at 1.
func New(points ...Color) (Palette, error) {
	if len(points) == 0 {
		return Palette{}, ErrEmpty
	}
	for i, p := range points {
		for _, ch := range [...]float64{p.R, p.G, p.B} {
			if !(ch >= 0 && ch <= 1) {
				return Palette{}, fmt.Errorf("control point %d %v: %w", i, p, ErrChannel)
			}
		}
	}
	return Palette{points: append([]Color(nil), points...)}, nil
}

// Must is like New but panics if the control points are invalid.
func Must(points ...Color) Palette {
	p, err := New(points...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of control points.
func (p Palette) Len() int {
	return len(p.points)
}

// Point returns the i-th control point.
func (p Palette) Point(i int) Color {
	return p.points[i]
}

// Sample returns the color at position in [0, 1]. Positions outside the
// range are clamped.
func (p Palette) Sample(position float64) Color {
	last := len(p.points) - 1
	if last == 0 || math.IsNaN(position) || position <= 0 {
		return p.points[0]
	}
	if position >= 1 {
		return p.points[last]
	}

	i, t := math.Modf(position * float64(last))
	lo := int(i)
	if lo >= last {
		return p.points[last]
	}
	a, b := p.points[lo], p.points[lo+1]
	return Color{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
	}
}
