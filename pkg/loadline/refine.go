package loadline

import (
	"fmt"
	"math"

	"github.com/edp1096/semilab/pkg/device"
	"github.com/edp1096/semilab/pkg/matrix"
)

const (
	maxIter = 100
	vntol   = 1e-12 // V
	abstol  = 1e-15 // A
)

// Refine polishes a found Q-point inside its bracket. Each Newton step solves
// the one-node circuit (Norton supply, load resistor, linearised diode) on a
// nodal matrix; a step that leaves the bracket is replaced by bisection.
func Refine(d *device.Diode, q QPoint, supply, load float64) (QPoint, error) {
	if !q.Found {
		return QPoint{}, ErrNotFound
	}
	if err := d.Validate(); err != nil {
		return QPoint{}, err
	}
	src, rl, err := device.Norton(supply, load)
	if err != nil {
		return QPoint{}, fmt.Errorf("%w: R=%g", ErrNonPositiveLoad, load)
	}

	residual := func(v float64) float64 {
		id, _ := d.Current(v)
		return id - Line(v, supply, load)
	}

	lo, hi := q.Lo, q.Hi
	flo, fhi := residual(lo), residual(hi)
	if flo == 0 {
		return refined(d, lo, q), nil
	}
	if fhi == 0 {
		return refined(d, hi, q), nil
	}
	if math.Signbit(flo) == math.Signbit(fhi) {
		return QPoint{}, fmt.Errorf("%w: [%g, %g]", ErrNoBracket, lo, hi)
	}

	mat, err := matrix.NewMatrix(1)
	if err != nil {
		return QPoint{}, err
	}
	defer mat.Destroy()

	anode := 1
	v := q.V
	for iter := 0; iter < maxIter; iter++ {
		mat.Clear()
		for _, s := range []device.Stamper{src, rl, d} {
			if err := s.Stamp(mat, anode, 0, v); err != nil {
				return QPoint{}, err
			}
		}
		if err := mat.Solve(); err != nil {
			return QPoint{}, err
		}

		next := mat.Solution()[anode]
		if !(next > lo && next < hi) {
			next = 0.5 * (lo + hi)
		}

		f := residual(next)
		if math.Signbit(f) == math.Signbit(flo) {
			lo, flo = next, f
		} else {
			hi = next
		}

		if math.Abs(next-v) < vntol || math.Abs(f) < abstol {
			return refined(d, next, q), nil
		}
		v = next
	}

	return QPoint{}, fmt.Errorf("%w after %d iterations", ErrNoConvergence, maxIter)
}

func refined(d *device.Diode, v float64, q QPoint) QPoint {
	id, _ := d.Current(v)
	return QPoint{V: v, I: id, Index: -1, Found: true, Lo: q.Lo, Hi: q.Hi}
}
