package process

import (
	"fmt"
	"math"
	"time"

	"github.com/edp1096/semilab/internal/consts"
)

// WaferArea is the face area (cm²) of a wafer with the given diameter in inches.
func WaferArea(diameterIn float64) (float64, error) {
	if !(diameterIn > 0) {
		return 0, fmt.Errorf("%w: diameter %g in", ErrNonPositiveArea, diameterIn)
	}
	r := diameterIn / 2 * consts.CM_PER_INCH
	return math.Pi * r * r, nil
}

// Dose is the implanted dose (ions/cm²) for singly charged ions: I*t / (q*A).
func Dose(beamA, seconds, diameterIn float64) (float64, error) {
	im := Implant{BeamCurrent: beamA, WaferDiameter: diameterIn, ChargeState: 1}
	if !finiteNonNegative(beamA) || !finiteNonNegative(seconds) {
		return 0, fmt.Errorf("%w: I=%g A, t=%g s", ErrNegative, beamA, seconds)
	}
	return im.dose(seconds)
}

type Implant struct {
	BeamCurrent   float64       // A
	Duration      time.Duration // beam-on time
	WaferDiameter float64       // inch
	ChargeState   int           // 1 for B+, 2 for P++; 0 is read as 1
}

func (im Implant) Dose() (float64, error) {
	if !finiteNonNegative(im.BeamCurrent) || im.Duration < 0 {
		return 0, fmt.Errorf("%w: I=%g A, t=%s", ErrNegative, im.BeamCurrent, im.Duration)
	}
	return im.dose(im.Duration.Seconds())
}

func (im Implant) dose(seconds float64) (float64, error) {
	area, err := WaferArea(im.WaferDiameter)
	if err != nil {
		return 0, err
	}
	n := im.ChargeState
	if n == 0 {
		n = 1
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrChargeState, im.ChargeState)
	}
	charge := float64(n) * consts.CHARGE
	return im.BeamCurrent * seconds / (charge * area), nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// ImplantTime is the beam-on time needed to reach targetDose (ions/cm²).
func ImplantTime(targetDose, beamA, diameterIn float64, chargeState int) (time.Duration, error) {
	if !(targetDose > 0) {
		return 0, fmt.Errorf("%w: %g", ErrNonPositiveDose, targetDose)
	}
	if !(beamA > 0) {
		return 0, fmt.Errorf("%w: %g A", ErrNonPositiveBeam, beamA)
	}
	if chargeState < 1 {
		return 0, fmt.Errorf("%w: %d", ErrChargeState, chargeState)
	}
	area, err := WaferArea(diameterIn)
	if err != nil {
		return 0, err
	}
	seconds := targetDose * float64(chargeState) * consts.CHARGE * area / beamA
	return Duration(seconds, time.Second)
}
