package device

import (
	"errors"
	"fmt"

	"github.com/edp1096/semilab/pkg/matrix"
)

var ErrResistance = errors.New("device: resistance must be positive")

// Resistor is a linear two-terminal element, stamped as a conductance.
type Resistor struct {
	Value float64 // Ω
}

func (r *Resistor) Stamp(m matrix.DeviceMatrix, n1, n2 int, _ float64) error {
	if !(r.Value > 0) {
		return fmt.Errorf("%w: R=%g", ErrResistance, r.Value)
	}

	g := 1.0 / r.Value // Conductance. G = 1/R
	if n1 != 0 {
		m.AddElement(n1, n1, g)
		if n2 != 0 {
			m.AddElement(n1, n2, -g)
		}
	}
	if n2 != 0 {
		if n1 != 0 {
			m.AddElement(n2, n1, -g)
		}
		m.AddElement(n2, n2, g)
	}

	return nil
}

// CurrentSource injects a constant current into n1 and draws it from n2.
type CurrentSource struct {
	Value float64 // A
}

func (i *CurrentSource) Stamp(m matrix.DeviceMatrix, n1, n2 int, _ float64) error {
	// By KCL, Current flow into n1 and out of n2
	if n1 != 0 {
		m.AddRHS(n1, i.Value)
	}
	if n2 != 0 {
		m.AddRHS(n2, -i.Value)
	}
	return nil
}

// Norton returns the current source and shunt resistor equivalent to a
// voltage source vs in series with r.
func Norton(vs, r float64) (*CurrentSource, *Resistor, error) {
	if !(r > 0) {
		return nil, nil, fmt.Errorf("%w: R=%g", ErrResistance, r)
	}
	return &CurrentSource{Value: vs / r}, &Resistor{Value: r}, nil
}
