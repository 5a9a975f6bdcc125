package device

import (
	"fmt"
	"math"

	"github.com/edp1096/semilab/internal/consts"
	"github.com/edp1096/semilab/pkg/curve"
)

// Occupation is the Fermi-Dirac probability that a state at energy e (eV) is
// filled, for Fermi level ef (eV) and temperature t (K).
//
// At t == 0 the distribution is a step: 1 below ef, 0 at and above it.
func Occupation(e, ef, t float64) (float64, error) {
	if math.IsNaN(e) || math.IsNaN(ef) || math.IsNaN(t) {
		return 0, ErrNotANumber
	}
	if t < 0 {
		return 0, fmt.Errorf("%w: T=%g K", ErrNegativeTemperature, t)
	}
	if t == 0 {
		if e < ef {
			return 1, nil
		}
		return 0, nil
	}

	x := (e - ef) / (consts.BOLTZMANN_EV * t)
	// exp only ever sees a non-positive argument, so it cannot overflow.
	if x > 0 {
		ex := math.Exp(-x)
		return ex / (1 + ex), nil
	}
	return 1 / (1 + math.Exp(x)), nil
}

// FermiCurve samples Occupation over [emin, emax] eV.
func FermiCurve(emin, emax float64, samples int, ef, t float64) (curve.Curve, error) {
	if _, err := Occupation(ef, ef, t); err != nil {
		return nil, err
	}
	return curve.Sample(emin, emax, samples, func(e float64) (float64, error) {
		return Occupation(e, ef, t)
	})
}
