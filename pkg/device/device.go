// Package device models the semiconductor devices explored in the lab:
// the Shockley diode, the square-law MOSFET and Fermi-Dirac occupation.
package device

import (
	"errors"

	"github.com/edp1096/semilab/pkg/matrix"
)

var (
	ErrNonPositiveTemperature = errors.New("device: temperature must be above 0 K")
	ErrNegativeTemperature    = errors.New("device: temperature must not be negative")
	ErrThermalProduct         = errors.New("device: n*Vt must be positive and finite")
	ErrSaturationCurrent      = errors.New("device: saturation current must be positive and finite")
	ErrIdealityFactor         = errors.New("device: ideality factor must be within [1, 2]")
	ErrThreshold              = errors.New("device: threshold voltage must not be negative")
	ErrTransconductance       = errors.New("device: transconductance coefficient must be positive and finite")
	ErrLambda                 = errors.New("device: channel length modulation must not be negative")
	ErrNotANumber             = errors.New("device: input is NaN")
)

// Stamper loads a linearised two-terminal element into a nodal matrix.
// Node 0 is ground and is never stamped.
type Stamper interface {
	Stamp(m matrix.DeviceMatrix, n1, n2 int, v float64) error
}
