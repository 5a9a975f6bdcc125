// Package resistor decodes 4-band resistor color codes.
package resistor

import (
	"fmt"

	"github.com/edp1096/semilab/pkg/util"
)

type Reading struct {
	Ohms             float64
	TolerancePercent float64
}

// Decode reads bands 1-4. A color that is not valid for its band panics.
func Decode(band1, band2, multiplier, tolerance Color) Reading {
	value := float64(10*band1.Digit() + band2.Digit())
	return Reading{
		Ohms:             value * multiplier.Multiplier(),
		TolerancePercent: tolerance.Tolerance(),
	}
}

func (r Reading) Min() float64 { return r.Ohms * (1 - r.TolerancePercent/100) }

func (r Reading) Max() float64 { return r.Ohms * (1 + r.TolerancePercent/100) }

func (r Reading) String() string {
	return fmt.Sprintf("%s ±%s", util.FormatValueFactor(r.Ohms, "Ω"), util.FormatPercent(r.TolerancePercent))
}
