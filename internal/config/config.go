// Package config loads the default parameter sets used by the semilab shell.
// Values come from built-in defaults, an optional config file and
// SEMILAB_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "SEMILAB"

var ErrInvalid = errors.New("config: invalid value")

type Diode struct {
	TempC   float64 `mapstructure:"temp_c"`  // Junction temperature (degC)
	Is      float64 `mapstructure:"is"`      // Saturation current (A)
	N       float64 `mapstructure:"n"`       // Ideality factor
	VMin    float64 `mapstructure:"v_min"`   // Sweep start (V)
	VMax    float64 `mapstructure:"v_max"`   // Sweep stop (V)
	Samples int     `mapstructure:"samples"` // Sweep points
}

type Mosfet struct {
	Vth     float64   `mapstructure:"vth"`
	K       float64   `mapstructure:"k"`
	Lambda  float64   `mapstructure:"lambda"`
	Vgs     []float64 `mapstructure:"vgs"` // One output curve per entry
	VdsMax  float64   `mapstructure:"vds_max"`
	VgsMax  float64   `mapstructure:"vgs_max"` // Transfer curve sweep stop
	Samples int       `mapstructure:"samples"`
}

type Fermi struct {
	Ef      float64 `mapstructure:"ef"`     // Fermi level (eV)
	TempK   float64 `mapstructure:"temp_k"` // K, 0 gives the step function
	EMin    float64 `mapstructure:"e_min"`
	EMax    float64 `mapstructure:"e_max"`
	Samples int     `mapstructure:"samples"`
}

type Oxidation struct {
	Method  string  `mapstructure:"method"` // dry | wet
	TempC   float64 `mapstructure:"temp_c"`
	Minutes float64 `mapstructure:"minutes"`
	Initial float64 `mapstructure:"initial_nm"`
	Samples int     `mapstructure:"samples"`
}

type Implant struct {
	BeamCurrent   float64 `mapstructure:"beam_current"`   // A
	Seconds       float64 `mapstructure:"seconds"`        // s
	WaferDiameter float64 `mapstructure:"wafer_diameter"` // inch
	ChargeState   int     `mapstructure:"charge_state"`
}

type LoadLine struct {
	Supply float64 `mapstructure:"supply"` // V
	Load   float64 `mapstructure:"load"`   // Ω
	Refine bool    `mapstructure:"refine"`
}

type Chart struct {
	Width  float64 `mapstructure:"width"`  // inch
	Height float64 `mapstructure:"height"` // inch
}

type Config struct {
	Diode     Diode     `mapstructure:"diode"`
	Mosfet    Mosfet    `mapstructure:"mosfet"`
	Fermi     Fermi     `mapstructure:"fermi"`
	Oxidation Oxidation `mapstructure:"oxidation"`
	Implant   Implant   `mapstructure:"implant"`
	LoadLine  LoadLine  `mapstructure:"loadline"`
	Chart     Chart     `mapstructure:"chart"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("diode.temp_c", 27.0)
	v.SetDefault("diode.is", 10e-12)
	v.SetDefault("diode.n", 1.5)
	v.SetDefault("diode.v_min", -1.0)
	v.SetDefault("diode.v_max", 1.0)
	v.SetDefault("diode.samples", 500)

	v.SetDefault("mosfet.vth", 0.7)
	v.SetDefault("mosfet.k", 1e-3)
	v.SetDefault("mosfet.lambda", 0.0)
	v.SetDefault("mosfet.vgs", []float64{1.5, 2.0, 2.5, 3.0})
	v.SetDefault("mosfet.vds_max", 5.0)
	v.SetDefault("mosfet.vgs_max", 5.0)
	v.SetDefault("mosfet.samples", 200)

	v.SetDefault("fermi.ef", 0.0)
	v.SetDefault("fermi.temp_k", 300.0)
	v.SetDefault("fermi.e_min", -0.3)
	v.SetDefault("fermi.e_max", 0.3)
	v.SetDefault("fermi.samples", 300)

	v.SetDefault("oxidation.method", "dry")
	v.SetDefault("oxidation.temp_c", 1000.0)
	v.SetDefault("oxidation.minutes", 120.0)
	v.SetDefault("oxidation.initial_nm", 0.0)
	v.SetDefault("oxidation.samples", 100)

	v.SetDefault("implant.beam_current", 1e-3)
	v.SetDefault("implant.seconds", 10.0)
	v.SetDefault("implant.wafer_diameter", 8.0)
	v.SetDefault("implant.charge_state", 1)

	v.SetDefault("loadline.supply", 5.0)
	v.SetDefault("loadline.load", 220.0)
	v.SetDefault("loadline.refine", false)

	v.SetDefault("chart.width", 8.0)
	v.SetDefault("chart.height", 5.0)
}

// New returns a viper instance carrying the defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (if not empty) on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	v := New()
	if err := Read(v, path); err != nil {
		return nil, err
	}
	return Decode(v)
}

// Read merges a YAML/TOML/JSON file into v. An empty path is a no-op.
func Read(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

func Decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the ranges the lab exposes to students.
func (c *Config) Validate() error {
	checks := []struct {
		ok   bool
		name string
		val  any
	}{
		{c.Diode.TempC >= -50 && c.Diode.TempC <= 150, "diode.temp_c", c.Diode.TempC},
		{c.Diode.N >= 1 && c.Diode.N <= 2, "diode.n", c.Diode.N},
		{c.Diode.Is > 0, "diode.is", c.Diode.Is},
		{c.Diode.VMax > c.Diode.VMin, "diode.v_max", c.Diode.VMax},
		{c.Diode.Samples >= 2, "diode.samples", c.Diode.Samples},
		{c.Mosfet.Vth >= 0, "mosfet.vth", c.Mosfet.Vth},
		{c.Mosfet.K > 0, "mosfet.k", c.Mosfet.K},
		{c.Mosfet.Lambda >= 0, "mosfet.lambda", c.Mosfet.Lambda},
		{c.Mosfet.VdsMax > 0, "mosfet.vds_max", c.Mosfet.VdsMax},
		{c.Mosfet.VgsMax > 0, "mosfet.vgs_max", c.Mosfet.VgsMax},
		{c.Mosfet.Samples >= 2, "mosfet.samples", c.Mosfet.Samples},
		{c.Fermi.TempK >= 0, "fermi.temp_k", c.Fermi.TempK},
		{c.Fermi.EMax > c.Fermi.EMin, "fermi.e_max", c.Fermi.EMax},
		{c.Fermi.Samples >= 2, "fermi.samples", c.Fermi.Samples},
		{c.Oxidation.Minutes >= 0, "oxidation.minutes", c.Oxidation.Minutes},
		{c.Oxidation.Initial >= 0, "oxidation.initial_nm", c.Oxidation.Initial},
		{c.Oxidation.Samples >= 2, "oxidation.samples", c.Oxidation.Samples},
		{c.Implant.WaferDiameter > 0, "implant.wafer_diameter", c.Implant.WaferDiameter},
		{c.Implant.ChargeState >= 1, "implant.charge_state", c.Implant.ChargeState},
		{c.LoadLine.Load > 0, "loadline.load", c.LoadLine.Load},
		{c.Chart.Width > 0 && c.Chart.Height > 0, "chart.width/height", fmt.Sprintf("%gx%g", c.Chart.Width, c.Chart.Height)},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s = %v", ErrInvalid, chk.name, chk.val)
		}
	}
	return nil
}
