// Package fractal holds the escape-time evaluation of the Mandelbrot set and
// the mapping from screen space onto the complex plane.
package fractal

import "fmt"

// MaxIterations bounds every evaluation of a run.
const MaxIterations = 10000

// escapeRadius2 is the squared escape radius.
const escapeRadius2 = 4

// Result is the outcome of one evaluation: either the point escaped at
// iteration N, or it stayed bounded for every iteration.
type Result struct {
	N       int
	Bounded bool
}

// Escaped returns the result of a point escaping at iteration n.
func Escaped(n int) Result {
	return Result{N: n}
}

// Bounded returns the result of a point that never escaped within max iterations.
func Bounded(max int) Result {
	return Result{N: max, Bounded: true}
}

func (r Result) String() string {
	if r.Bounded {
		return "bounded"
	}
	return fmt.Sprintf("escaped at %d", r.N)
}

// Evaluate iterates z = z² + c from z = 0 and reports the index of the first
// iteration after which |z|² exceeds 4.
func Evaluate(c Point, maxIterations int) Result {
	var x, y float64
	for i := 0; i < maxIterations; i++ {
		// The imaginary part reads the old x; keep this order.
		xTemp := x*x - y*y + c.X
		y = 2*x*y + c.Y
		x = xTemp

		if x*x+y*y > escapeRadius2 {
			return Escaped(i)
		}
	}
	return Bounded(maxIterations)
}
