package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/edp1096/semilab/pkg/chart"
	"github.com/edp1096/semilab/pkg/convert"
	"github.com/edp1096/semilab/pkg/process"
	"github.com/edp1096/semilab/pkg/util"
)

func newOxideCmd() *cobra.Command {
	var target float64
	cmd := &cobra.Command{
		Use:   "oxide",
		Short: "Deal-Grove thermal oxide growth",
		Example: `  semilab oxide --method wet --temp 1100 --minutes 60
  semilab oxide --target 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, map[string]string{
				"oxidation.method":     "method",
				"oxidation.temp_c":     "temp",
				"oxidation.minutes":    "minutes",
				"oxidation.initial_nm": "initial",
				"oxidation.samples":    "samples",
			})
			if err != nil {
				return err
			}
			p := cfg.Oxidation
			m, err := process.ParseMethod(p.Method)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			r, err := m.Rates(convert.CelsiusToKelvin(p.TempC))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s oxidation at %g degC: B = %.4g um²/h, B/A = %.4g um/h\n", m, p.TempC, r.B, r.BA)

			if cmd.Flags().Changed("target") {
				d, err := process.TimeToThickness(target, m, p.TempC)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "time to %g nm: %s (%.1f min)\n", target, d.Round(time.Second), d.Minutes())
				return nil
			}

			dur, err := process.Duration(p.Minutes, time.Minute)
			if err != nil {
				return err
			}
			step := process.Process{
				Method:           m,
				TempC:            p.TempC,
				Duration:         dur,
				InitialThickness: p.Initial,
			}
			x, err := step.Thickness()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "thickness after %g min: %.2f nm\n", p.Minutes, x)

			c, err := step.Curve(p.Samples)
			if err != nil {
				return err
			}
			logger.Printf("oxide: %d samples", len(c))
			fig := &chart.Figure{Title: "Oxide growth", XLabel: "t (min)", YLabel: "thickness (nm)"}
			fig.Add(fmt.Sprintf("%s %gC", m, p.TempC), c)
			return saveChart(cmd, fig, cfg)
		},
	}
	f := cmd.Flags()
	f.String("method", "", "dry or wet")
	f.Float64("temp", 0, "furnace temperature (degC)")
	f.Float64("minutes", 0, "oxidation time (min)")
	f.Float64("initial", 0, "initial oxide thickness (nm)")
	f.Int("samples", 0, "curve points")
	f.Float64Var(&target, "target", 0, "print the time needed to grow this thickness (nm)")
	return cmd
}

func newImplantCmd() *cobra.Command {
	var target float64
	cmd := &cobra.Command{
		Use:   "implant",
		Short: "Ion implant dose from beam current and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, map[string]string{
				"implant.beam_current":   "beam",
				"implant.seconds":        "seconds",
				"implant.wafer_diameter": "diameter",
				"implant.charge_state":   "charge",
			})
			if err != nil {
				return err
			}
			p := cfg.Implant
			out := cmd.OutOrStdout()

			area, err := process.WaferArea(p.WaferDiameter)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "wafer %g in, area %.2f cm²\n", p.WaferDiameter, area)

			if cmd.Flags().Changed("target") {
				d, err := process.ImplantTime(target, p.BeamCurrent, p.WaferDiameter, p.ChargeState)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "time to %s: %s\n", util.FormatScientific(target, "ions/cm²"), d.Round(time.Millisecond))
				return nil
			}

			dur, err := process.Duration(p.Seconds, time.Second)
			if err != nil {
				return err
			}
			im := process.Implant{
				BeamCurrent:   p.BeamCurrent,
				Duration:      dur,
				WaferDiameter: p.WaferDiameter,
				ChargeState:   p.ChargeState,
			}
			dose, err := im.Dose()
			if err != nil {
				return err
			}
			logger.Printf("implant: I=%g A, t=%g s, q=%d", p.BeamCurrent, p.Seconds, p.ChargeState)
			fmt.Fprintf(out, "dose = %s\n", util.FormatScientific(dose, "ions/cm²"))
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64("beam", 0, "beam current (A)")
	f.Float64("seconds", 0, "implant time (s)")
	f.Float64("diameter", 0, "wafer diameter (inch)")
	f.Int("charge", 0, "ion charge state")
	f.Float64Var(&target, "target", 0, "print the time needed for this dose (ions/cm²)")
	return cmd
}
