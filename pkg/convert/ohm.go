// Package convert solves Ohm's law and converts between photon energy,
// wavelength and temperature scales.
package convert

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnderdetermined = errors.New("convert: fewer than two of V, I, R are known")
	ErrOverdetermined  = errors.New("convert: all of V, I, R are known, nothing to solve")
	ErrNegative        = errors.New("convert: quantity must not be negative")
	ErrZeroDenominator = errors.New("convert: division by zero")
	ErrNonPositive     = errors.New("convert: value must be positive")
	ErrNotFinite       = errors.New("convert: value is NaN or infinite")
)

// Value is an optional quantity. The zero Value is unknown.
type Value struct {
	v     float64
	known bool
}

var Unknown = Value{}

func Known(v float64) Value { return Value{v: v, known: true} }

func (v Value) IsKnown() bool { return v.known }

func (v Value) Float() float64 { return v.v }

type Quantity int

const (
	Voltage Quantity = iota
	Current
	Resistance
)

func (q Quantity) String() string {
	switch q {
	case Voltage:
		return "voltage"
	case Current:
		return "current"
	case Resistance:
		return "resistance"
	}
	panic(fmt.Sprintf("convert: invalid quantity %d", int(q)))
}

func (q Quantity) Unit() string {
	switch q {
	case Voltage:
		return "V"
	case Current:
		return "A"
	case Resistance:
		return "Ω"
	}
	panic(fmt.Sprintf("convert: invalid quantity %d", int(q)))
}

// Ohm is the solved unknown of V = I*R.
type Ohm struct {
	Solved Quantity
	Value  float64
}

// SolveOhmsLaw returns the one unknown among voltage, current and resistance.
// Exactly two arguments must be Known and non-negative.
func SolveOhmsLaw(voltage, current, resistance Value) (Ohm, error) {
	known := 0
	for _, q := range []Value{voltage, current, resistance} {
		if !q.known {
			continue
		}
		if !isFinite(q.v) {
			return Ohm{}, fmt.Errorf("%w: %g", ErrNotFinite, q.v)
		}
		if q.v < 0 {
			return Ohm{}, fmt.Errorf("%w: %g", ErrNegative, q.v)
		}
		known++
	}

	switch {
	case known < 2:
		return Ohm{}, ErrUnderdetermined
	case known > 2:
		return Ohm{}, ErrOverdetermined
	}

	var res Ohm
	switch {
	case !voltage.known:
		res = Ohm{Solved: Voltage, Value: current.v * resistance.v}
	case !current.known:
		if resistance.v == 0 {
			return Ohm{}, fmt.Errorf("%w: I = V/R with R = 0", ErrZeroDenominator)
		}
		res = Ohm{Solved: Current, Value: voltage.v / resistance.v}
	default:
		if current.v == 0 {
			return Ohm{}, fmt.Errorf("%w: R = V/I with I = 0", ErrZeroDenominator)
		}
		res = Ohm{Solved: Resistance, Value: voltage.v / current.v}
	}
	if !isFinite(res.Value) {
		return Ohm{}, fmt.Errorf("%w: %s overflows", ErrNotFinite, res.Solved)
	}
	return res, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
