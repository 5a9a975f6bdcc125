// Package curve holds sampled (x, y) data produced by the calculators.
package curve

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrTooFewSamples = errors.New("curve: at least 2 samples are required")
	ErrBadDomain     = errors.New("curve: domain bounds must be finite")
	ErrNonFinite     = errors.New("curve: sample is not finite")
)

type Point struct {
	X float64
	Y float64
}

// Curve is an ordered sequence of samples. It satisfies gonum's plotter.XYer.
type Curve []Point

func (c Curve) Len() int { return len(c) }

func (c Curve) XY(i int) (float64, float64) { return c[i].X, c[i].Y }

func (c Curve) Xs() []float64 {
	xs := make([]float64, len(c))
	for i, p := range c {
		xs[i] = p.X
	}
	return xs
}

func (c Curve) Ys() []float64 {
	ys := make([]float64, len(c))
	for i, p := range c {
		ys[i] = p.Y
	}
	return ys
}

// Bounds returns the y range of the curve. Empty curves report (0, 0).
func (c Curve) Bounds() (float64, float64) {
	if len(c) == 0 {
		return 0, 0
	}
	ys := c.Ys()
	return floats.Min(ys), floats.Max(ys)
}

// Scale returns a copy with every y multiplied by factor (e.g. A -> mA).
func (c Curve) Scale(factor float64) Curve {
	out := make(Curve, len(c))
	for i, p := range c {
		out[i] = Point{X: p.X, Y: p.Y * factor}
	}
	return out
}

// Grid returns n evenly spaced values from lo to hi inclusive.
func Grid(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
	}
	if !isFinite(lo) || !isFinite(hi) {
		return nil, ErrBadDomain
	}
	xs := floats.Span(make([]float64, n), lo, hi)
	xs[n-1] = hi // keep the upper bound exact
	return xs, nil
}

// Sample evaluates f on an n-point uniform grid over [lo, hi].
func Sample(lo, hi float64, n int, f func(x float64) (float64, error)) (Curve, error) {
	xs, err := Grid(lo, hi, n)
	if err != nil {
		return nil, err
	}

	c := make(Curve, n)
	for i, x := range xs {
		y, err := f(x)
		if err != nil {
			return nil, err
		}
		if !isFinite(y) {
			return nil, fmt.Errorf("%w: f(%g) = %g", ErrNonFinite, x, y)
		}
		c[i] = Point{X: x, Y: y}
	}
	return c, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
