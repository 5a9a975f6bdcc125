// Package process holds the microfabrication calculators: Deal-Grove thermal
// oxidation and ion-implant dose.
package process

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrNegativeTime    = errors.New("process: time must be finite and not negative")
	ErrTemperature     = errors.New("process: temperature must be above 0 K")
	ErrThickness       = errors.New("process: thickness must be finite and not negative")
	ErrNonPositiveArea = errors.New("process: wafer area must be positive")
	ErrNegative        = errors.New("process: beam current and duration must be finite and not negative")
	ErrChargeState     = errors.New("process: ion charge state must be at least 1")
	ErrNonPositiveBeam = errors.New("process: beam current must be positive")
	ErrNonPositiveDose = errors.New("process: target dose must be positive")
	ErrUnknownMethod   = errors.New("process: unknown oxidation method")
	ErrDurationRange   = errors.New("process: duration out of range")
)

// Duration converts v units (e.g. 1.5 hours) to a time.Duration. Values that
// do not fit in a Duration are ErrDurationRange, never a wrapped negative.
func Duration(v float64, unit time.Duration) (time.Duration, error) {
	ns := v * float64(unit)
	if math.IsNaN(ns) || ns < 0 || ns >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %g x %s", ErrDurationRange, v, unit)
	}
	return time.Duration(ns), nil
}
