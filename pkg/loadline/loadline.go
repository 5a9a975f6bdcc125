// Package loadline finds the operating point (Q-point) where a diode I-V
// curve meets the resistor load line I = (Vsupply - V) / Rload.
package loadline

import (
	"errors"
	"fmt"
	"math"

	"github.com/edp1096/semilab/pkg/curve"
	"github.com/edp1096/semilab/pkg/device"
)

var (
	ErrNonPositiveLoad = errors.New("loadline: load resistance must be positive")
	ErrNotFound        = errors.New("loadline: Q-point not found")
	ErrNoBracket       = errors.New("loadline: interval does not bracket the Q-point")
	ErrNoConvergence   = errors.New("loadline: refinement did not converge")
)

// QPoint is the operating point. When Found is false every other field is zero.
type QPoint struct {
	V     float64 // V
	I     float64 // A, diode current at V
	Index int     // sample index in the curve, -1 after refinement
	Found bool

	// Voltages of the two samples that bracket the crossing.
	Lo float64
	Hi float64
}

// Line is the load-line current at v.
func Line(v, supply, load float64) float64 {
	return (supply - v) / load
}

// Solve scans the sampled diode curve for the first sign change of
// I_diode - I_line between consecutive samples and returns the bracketing
// sample closer to the crossing. No crossing in the domain gives Found == false.
func Solve(c curve.Curve, supply, load float64) (QPoint, error) {
	if !(load > 0) || math.IsInf(load, 0) {
		return QPoint{}, fmt.Errorf("%w: R=%g", ErrNonPositiveLoad, load)
	}
	if len(c) < 2 {
		return QPoint{}, fmt.Errorf("%w: got %d", curve.ErrTooFewSamples, len(c))
	}

	residual := func(i int) float64 {
		return c[i].Y - Line(c[i].X, supply, load)
	}

	prev := residual(0)
	if prev == 0 {
		return at(c, 0, 0), nil
	}
	for i := 1; i < len(c); i++ {
		r := residual(i)
		if r == 0 {
			return at(c, i, i-1), nil
		}
		if math.Signbit(r) == math.Signbit(prev) {
			prev = r
			continue
		}
		if math.Abs(prev) < math.Abs(r) {
			return at(c, i-1, i), nil
		}
		return at(c, i, i-1), nil
	}

	return QPoint{}, nil
}

func at(c curve.Curve, i, other int) QPoint {
	lo, hi := c[i].X, c[other].X
	if lo > hi {
		lo, hi = hi, lo
	}
	return QPoint{
		V:     c[i].X,
		I:     c[i].Y,
		Index: i,
		Found: true,
		Lo:    lo,
		Hi:    hi,
	}
}

// SolveDiode samples the diode over [vmin, vmax] and runs Solve on the result.
func SolveDiode(d *device.Diode, vmin, vmax float64, samples int, supply, load float64) (QPoint, error) {
	c, err := d.Curve(vmin, vmax, samples)
	if err != nil {
		return QPoint{}, err
	}
	return Solve(c, supply, load)
}
