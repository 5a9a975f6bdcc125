package process

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/edp1096/semilab/internal/consts"
	"github.com/edp1096/semilab/pkg/convert"
	"github.com/edp1096/semilab/pkg/curve"
)

// ReferenceTempC is the furnace temperature used by ThicknessAt and GrowthCurve.
const ReferenceTempC = 1000.0

type Method int

const (
	Dry Method = iota // O2
	Wet               // H2O
)

func (m Method) String() string {
	switch m {
	case Dry:
		return "dry"
	case Wet:
		return "wet"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dry", "o2":
		return Dry, nil
	case "wet", "h2o", "steam":
		return Wet, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// arrhenius holds C*exp(-E/kT) prefactors for <111> silicon (Deal & Grove, 1965).
type arrhenius struct {
	bC, bE   float64 // parabolic: um²/h, eV
	baC, baE float64 // linear: um/h, eV
}

func (m Method) coefficients() arrhenius {
	switch m {
	case Dry:
		return arrhenius{bC: 7.72e2, bE: 1.23, baC: 6.23e6, baE: 2.0}
	case Wet:
		return arrhenius{bC: 3.86e2, bE: 0.78, baC: 1.63e8, baE: 2.05}
	}
	panic(fmt.Sprintf("process: invalid oxidation method %s", m))
}

// Rates are the Deal-Grove rate constants at one temperature.
type Rates struct {
	B  float64 // Parabolic rate constant (um²/h)
	BA float64 // Linear rate constant B/A (um/h)
}

// A is B / (B/A) in um.
func (r Rates) A() float64 { return r.B / r.BA }

func (m Method) Rates(tempK float64) (Rates, error) {
	c := m.coefficients()
	if !(tempK > 0) {
		return Rates{}, fmt.Errorf("%w: T=%g K", ErrTemperature, tempK)
	}
	kt := consts.BOLTZMANN_EV * tempK
	return Rates{
		B:  c.bC * math.Exp(-c.bE/kt),
		BA: c.baC * math.Exp(-c.baE/kt),
	}, nil
}

// thickness solves x² + A*x = B*(t + tau) for x >= 0; hours in, um out.
// The rationalised root avoids cancellation while B*t << A².
func (r Rates) thickness(hours, tau float64) (float64, error) {
	a := r.A()
	bt := r.B * (hours + tau)
	if bt == 0 {
		return 0, nil
	}
	x := 2 * bt / (a + math.Sqrt(a*a+4*bt))
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%w: t=%g h", ErrDurationRange, hours+tau)
	}
	return x, nil
}

// tau is the time shift (h) that accounts for an oxide x0 (um) already present.
func (r Rates) tau(x0 float64) float64 {
	return (x0*x0 + r.A()*x0) / r.B
}

// ThicknessAt returns the oxide thickness (nm) after minutes at ReferenceTempC.
func ThicknessAt(minutes float64, m Method) (float64, error) {
	if !(minutes >= 0) || math.IsInf(minutes, 1) {
		return 0, fmt.Errorf("%w: %g min", ErrNegativeTime, minutes)
	}
	r, err := m.Rates(convert.CelsiusToKelvin(ReferenceTempC))
	if err != nil {
		return 0, err
	}
	x, err := r.thickness(minutes/60, 0)
	return x * 1e3, err
}

// GrowthCurve samples ThicknessAt over [tmin, tmax] minutes.
func GrowthCurve(tmin, tmax float64, samples int, m Method) (curve.Curve, error) {
	m.coefficients()
	if !(tmin >= 0) || !(tmax >= 0) {
		return nil, fmt.Errorf("%w: [%g, %g] min", ErrNegativeTime, tmin, tmax)
	}
	return curve.Sample(tmin, tmax, samples, func(t float64) (float64, error) {
		return ThicknessAt(t, m)
	})
}

// Process is one furnace step.
type Process struct {
	Method           Method
	TempC            float64
	Duration         time.Duration
	InitialThickness float64 // nm of oxide before the step
}

func (p Process) rates() (Rates, error) {
	if !(p.InitialThickness >= 0) || math.IsInf(p.InitialThickness, 1) {
		return Rates{}, fmt.Errorf("%w: x0=%g nm", ErrThickness, p.InitialThickness)
	}
	return p.Method.Rates(convert.CelsiusToKelvin(p.TempC))
}

// Thickness is the total oxide (nm) at the end of the step.
func (p Process) Thickness() (float64, error) {
	return p.ThicknessAfter(p.Duration)
}

func (p Process) ThicknessAfter(d time.Duration) (float64, error) {
	if d < 0 {
		return 0, fmt.Errorf("%w: %s", ErrNegativeTime, d)
	}
	r, err := p.rates()
	if err != nil {
		return 0, err
	}
	tau := r.tau(p.InitialThickness / 1e3)
	x, err := r.thickness(d.Hours(), tau)
	return x * 1e3, err
}

// Curve samples thickness (nm) against time (min) from 0 to Duration.
func (p Process) Curve(samples int) (curve.Curve, error) {
	if _, err := p.rates(); err != nil {
		return nil, err
	}
	return curve.Sample(0, p.Duration.Minutes(), samples, func(min float64) (float64, error) {
		d, err := Duration(min, time.Minute)
		if err != nil {
			return 0, err
		}
		return p.ThicknessAfter(d)
	})
}

// TimeToThickness is the furnace time needed to grow from bare silicon to nm.
func TimeToThickness(nm float64, m Method, tempC float64) (time.Duration, error) {
	if !(nm >= 0) || math.IsInf(nm, 1) {
		return 0, fmt.Errorf("%w: %g nm", ErrThickness, nm)
	}
	r, err := m.Rates(convert.CelsiusToKelvin(tempC))
	if err != nil {
		return 0, err
	}
	return Duration(r.tau(nm/1e3), time.Hour)
}
