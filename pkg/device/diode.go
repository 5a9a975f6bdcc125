package device

import (
	"fmt"
	"math"

	"github.com/edp1096/semilab/internal/consts"
	"github.com/edp1096/semilab/pkg/curve"
	"github.com/edp1096/semilab/pkg/matrix"
)

const (
	REFTEMP = 300.15 // 27degC

	// Largest exponent fed to math.Exp. Anything above is far past the chart anyway.
	maxExpArg = 80.0

	// Forward current is clipped here so curves stay finite and chartable.
	CurrentLimit = 1e3 // A
)

type Diode struct {
	Is   float64 // Saturation current 포화 전류 (A)
	N    float64 // Ideality Factor / Emission Coefficient 이상계수
	Temp float64 // Junction temperature (K)

	// Temperature parameters
	Eg   float64 // Energy Gap (eV)
	Xti  float64 // Saturation current temperature exponent
	Tnom float64 // Temperature at which Is was measured (K)

	Gmin float64 // Minimum Conductance
}

func NewDiode() *Diode {
	d := &Diode{}
	d.setDefaultParameters()
	return d
}

func (d *Diode) setDefaultParameters() {
	d.Is = 1e-14 // 1e-14 A
	d.N = 1.0
	d.Temp = REFTEMP

	d.Eg = 1.11 // Silicon bandgap
	d.Xti = 3.0 // Saturation current temp. exp
	d.Tnom = REFTEMP

	d.Gmin = 1e-12
}

func (d *Diode) Validate() error {
	if !(d.Is > 0) || math.IsInf(d.Is, 1) {
		return fmt.Errorf("%w: Is=%g", ErrSaturationCurrent, d.Is)
	}
	if d.N < 1 || d.N > 2 {
		return fmt.Errorf("%w: n=%g", ErrIdealityFactor, d.N)
	}
	if !(d.Temp > 0) {
		return fmt.Errorf("%w: T=%g K", ErrNonPositiveTemperature, d.Temp)
	}
	return nil
}

// ThermalVoltage is kT/q in volts.
func ThermalVoltage(temp float64) (float64, error) {
	if !(temp > 0) {
		return 0, fmt.Errorf("%w: T=%g K", ErrNonPositiveTemperature, temp)
	}
	return consts.BOLTZMANN * temp / consts.CHARGE, nil
}

// DiodeCurrent is the Shockley equation Is*(exp(V/(n*Vt)) - 1), clipped to ±CurrentLimit.
func DiodeCurrent(v, is, n, vt float64) (float64, error) {
	if !(is > 0) || math.IsInf(is, 1) {
		return 0, fmt.Errorf("%w: Is=%g", ErrSaturationCurrent, is)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: V is NaN", ErrNotANumber)
	}
	nvt := n * vt
	if !(nvt > 0) || math.IsInf(nvt, 0) {
		return 0, fmt.Errorf("%w: n=%g Vt=%g", ErrThermalProduct, n, vt)
	}
	return clipCurrent(is * math.Expm1(clampArg(v/nvt))), nil
}

// DiodeCurve samples DiodeCurrent over [vmin, vmax].
func DiodeCurve(vmin, vmax float64, samples int, is, n, vt float64) (curve.Curve, error) {
	if _, err := DiodeCurrent(0, is, n, vt); err != nil {
		return nil, err
	}
	return curve.Sample(vmin, vmax, samples, func(v float64) (float64, error) {
		return DiodeCurrent(v, is, n, vt)
	})
}

func (d *Diode) ThermalVoltage() (float64, error) {
	return ThermalVoltage(d.Temp)
}

// SaturationCurrentAt scales Is from Tnom to temp:
// is(T) = is(Tnom) * (T/Tnom)^(XTI/N) * exp((T/Tnom - 1) * Eg / (N*Vt(T)))
func (d *Diode) SaturationCurrentAt(temp float64) (float64, error) {
	vt, err := ThermalVoltage(temp)
	if err != nil {
		return 0, err
	}
	tnom := d.Tnom
	if tnom <= 0 {
		tnom = REFTEMP
	}
	ratio := temp / tnom
	egfact := (ratio - 1.0) * d.Eg / (d.N * vt)
	return d.Is * math.Pow(ratio, d.Xti/d.N) * math.Exp(egfact), nil
}

func (d *Diode) Current(v float64) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	vt, _ := d.ThermalVoltage()
	return DiodeCurrent(v, d.Is, d.N, vt)
}

// Conductance is dI/dV at v plus Gmin, used when linearising the junction.
func (d *Diode) Conductance(v float64) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	vt, _ := d.ThermalVoltage()
	nvt := d.N * vt

	arg := v / nvt
	if arg > maxExpArg {
		// Exponential is pinned; keep a finite slope so Newton still moves.
		arg = maxExpArg
	}
	gd := d.Is * math.Exp(arg) / nvt
	return math.Min(gd, CurrentLimit/nvt) + d.Gmin, nil
}

func (d *Diode) Curve(vmin, vmax float64, samples int) (curve.Curve, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	vt, _ := d.ThermalVoltage()
	return DiodeCurve(vmin, vmax, samples, d.Is, d.N, vt)
}

// Stamp loads the companion model (gd in parallel with id - gd*vd) linearised at vd.
func (d *Diode) Stamp(m matrix.DeviceMatrix, n1, n2 int, vd float64) error {
	id, err := d.Current(vd)
	if err != nil {
		return err
	}
	gd, err := d.Conductance(vd)
	if err != nil {
		return err
	}

	if n1 != 0 {
		m.AddElement(n1, n1, gd)
		if n2 != 0 {
			m.AddElement(n1, n2, -gd)
		}
		m.AddRHS(n1, -(id - gd*vd))
	}

	if n2 != 0 {
		if n1 != 0 {
			m.AddElement(n2, n1, -gd)
		}
		m.AddElement(n2, n2, gd)
		m.AddRHS(n2, (id - gd*vd))
	}

	return nil
}

func clampArg(arg float64) float64 {
	if arg > maxExpArg {
		return maxExpArg
	}
	return arg
}

func clipCurrent(i float64) float64 {
	switch {
	case i > CurrentLimit:
		return CurrentLimit
	case i < -CurrentLimit:
		return -CurrentLimit
	}
	return i
}
