package convert

import (
	"fmt"

	"github.com/edp1096/semilab/internal/consts"
)

// PhotonEnergy returns E (eV) for a wavelength in nm.
func PhotonEnergy(nm float64) (float64, error) {
	return photon(nm, "wavelength", "nm")
}

// Wavelength returns lambda (nm) for a photon energy in eV.
func Wavelength(ev float64) (float64, error) {
	return photon(ev, "energy", "eV")
}

// photon is hc/x; wavelength and energy are each other's reciprocal scale.
func photon(x float64, name, unit string) (float64, error) {
	if !isFinite(x) {
		return 0, fmt.Errorf("%w: %s %g %s", ErrNotFinite, name, x, unit)
	}
	if x <= 0 {
		return 0, fmt.Errorf("%w: %s %g %s", ErrNonPositive, name, x, unit)
	}
	y := consts.PHOTON_EV_NM / x
	if !isFinite(y) {
		return 0, fmt.Errorf("%w: %s %g %s is too small", ErrNotFinite, name, x, unit)
	}
	return y, nil
}

func CelsiusToKelvin(c float64) float64 { return c + consts.KELVIN }

func KelvinToCelsius(k float64) float64 { return k - consts.KELVIN }
