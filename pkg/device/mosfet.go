package device

import (
	"fmt"
	"math"

	"github.com/edp1096/semilab/pkg/curve"
)

type Region int

const (
	CUTOFF     Region = iota // Cutoff region
	LINEAR                   // Linear/Triode region
	SATURATION               // Saturation region
)

func (r Region) String() string {
	switch r {
	case CUTOFF:
		return "cutoff"
	case LINEAR:
		return "triode"
	case SATURATION:
		return "saturation"
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// Mosfet is the long-channel square-law NMOS.
type Mosfet struct {
	Vth    float64 // Threshold voltage (V)
	K      float64 // Transconductance coefficient (A/V²)
	Lambda float64 // Channel length modulation (1/V), 0 disables it
}

func NewMosfet() *Mosfet {
	return &Mosfet{
		Vth: 0.7,
		K:   1e-3,
	}
}

func (m *Mosfet) Validate() error {
	if !(m.Vth >= 0) || math.IsInf(m.Vth, 1) {
		return fmt.Errorf("%w: Vth=%g", ErrThreshold, m.Vth)
	}
	if !(m.K > 0) || math.IsInf(m.K, 1) {
		return fmt.Errorf("%w: K=%g", ErrTransconductance, m.K)
	}
	if !(m.Lambda >= 0) || math.IsInf(m.Lambda, 1) {
		return fmt.Errorf("%w: lambda=%g", ErrLambda, m.Lambda)
	}
	return nil
}

// DrainCurrent returns Id and the operating region for the given bias.
// Negative vds lies outside the model and yields 0.
func (m *Mosfet) DrainCurrent(vgs, vds float64) (float64, Region) {
	vov := vgs - m.Vth
	if vov < 0 {
		return 0, CUTOFF
	}

	clm := 1 + m.Lambda*vds
	switch {
	case vds < 0:
		return 0, LINEAR
	case vds < vov:
		return m.K * (2*vov*vds - vds*vds) * clm, LINEAR
	default:
		return m.K * vov * vov * clm, SATURATION
	}
}

// DrainCurrent is the square-law model without channel length modulation.
func DrainCurrent(vgs, vds, vth, k float64) (float64, Region, error) {
	m := Mosfet{Vth: vth, K: k}
	if err := m.Validate(); err != nil {
		return 0, CUTOFF, err
	}
	if math.IsNaN(vgs) || math.IsNaN(vds) {
		return 0, CUTOFF, fmt.Errorf("%w: Vgs=%g Vds=%g", ErrNotANumber, vgs, vds)
	}
	id, region := m.DrainCurrent(vgs, vds)
	return id, region, nil
}

// Curve is the output characteristic Id(Vds) at fixed vgs.
func (m *Mosfet) Curve(vmin, vmax float64, samples int, vgs float64) (curve.Curve, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return curve.Sample(vmin, vmax, samples, func(vds float64) (float64, error) {
		id, _ := m.DrainCurrent(vgs, vds)
		return id, nil
	})
}

func MosfetCurve(vmin, vmax float64, samples int, vgs, vth, k float64) (curve.Curve, error) {
	m := Mosfet{Vth: vth, K: k}
	return m.Curve(vmin, vmax, samples, vgs)
}

// OutputFamily returns one output curve per gate voltage, in the order given.
func (m *Mosfet) OutputFamily(vgs []float64, vmin, vmax float64, samples int) ([]curve.Curve, error) {
	family := make([]curve.Curve, 0, len(vgs))
	for _, v := range vgs {
		c, err := m.Curve(vmin, vmax, samples, v)
		if err != nil {
			return nil, fmt.Errorf("vgs=%g: %w", v, err)
		}
		family = append(family, c)
	}
	return family, nil
}

// TransferCurve is Id(Vgs) at fixed vds.
func (m *Mosfet) TransferCurve(vds, vgsMin, vgsMax float64, samples int) (curve.Curve, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return curve.Sample(vgsMin, vgsMax, samples, func(vgs float64) (float64, error) {
		id, _ := m.DrainCurrent(vgs, vds)
		return id, nil
	})
}
