package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/semilab/internal/config"
	"github.com/edp1096/semilab/pkg/chart"
	"github.com/edp1096/semilab/pkg/convert"
	"github.com/edp1096/semilab/pkg/curve"
	"github.com/edp1096/semilab/pkg/device"
	"github.com/edp1096/semilab/pkg/loadline"
	"github.com/edp1096/semilab/pkg/util"
)

const tableRows = 12

func newFermiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fermi",
		Short: "Sample the Fermi-Dirac occupation f(E)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, map[string]string{
				"fermi.ef":      "ef",
				"fermi.temp_k":  "temp",
				"fermi.e_min":   "emin",
				"fermi.e_max":   "emax",
				"fermi.samples": "samples",
			})
			if err != nil {
				return err
			}
			p := cfg.Fermi
			c, err := device.FermiCurve(p.EMin, p.EMax, p.Samples, p.Ef, p.TempK)
			if err != nil {
				return err
			}
			logger.Printf("fermi: %d samples, Ef=%g eV, T=%g K", len(c), p.Ef, p.TempK)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ef = %g eV, T = %g K\n", p.Ef, p.TempK)
			fmt.Fprintf(out, "%14s  %14s\n", "E", "f(E)")
			for _, pt := range decimate(c, tableRows) {
				fmt.Fprintf(out, "%14s  %14s\n", util.FormatValueFactor(pt.X, "eV"), util.FormatMagnitude(pt.Y))
			}

			fig := &chart.Figure{Title: "Fermi-Dirac distribution", XLabel: "E (eV)", YLabel: "f(E)"}
			fig.Add(fmt.Sprintf("T=%gK", p.TempK), c)
			return saveChart(cmd, fig, cfg)
		},
	}
	f := cmd.Flags()
	f.Float64("ef", 0, "Fermi level (eV)")
	f.Float64("temp", 0, "temperature (K), 0 gives the step function")
	f.Float64("emin", 0, "sweep start (eV)")
	f.Float64("emax", 0, "sweep stop (eV)")
	f.Int("samples", 0, "sweep points")
	return cmd
}

func diodeFlags(cmd *cobra.Command) map[string]string {
	f := cmd.Flags()
	f.Float64("temp", 0, "junction temperature (degC)")
	f.Float64("is", 0, "saturation current (A)")
	f.Float64("n", 0, "ideality factor")
	f.Float64("vmin", 0, "sweep start (V)")
	f.Float64("vmax", 0, "sweep stop (V)")
	f.Int("samples", 0, "sweep points")
	return map[string]string{
		"diode.temp_c":  "temp",
		"diode.is":      "is",
		"diode.n":       "n",
		"diode.v_min":   "vmin",
		"diode.v_max":   "vmax",
		"diode.samples": "samples",
	}
}

func newDiode(p config.Diode) *device.Diode {
	d := device.NewDiode()
	d.Is = p.Is
	d.N = p.N
	d.Temp = convert.CelsiusToKelvin(p.TempC)
	return d
}

func newDiodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diode",
		Short: "Sweep the Shockley diode I-V curve",
		Args:  cobra.NoArgs,
	}
	bindings := diodeFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, bindings)
		if err != nil {
			return err
		}
		p := cfg.Diode
		d := newDiode(p)
		vt, err := d.ThermalVoltage()
		if err != nil {
			return err
		}
		c, err := d.Curve(p.VMin, p.VMax, p.Samples)
		if err != nil {
			return err
		}
		logger.Printf("diode: %d samples over [%g, %g] V", len(c), p.VMin, p.VMax)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Is = %s, n = %g, T = %g degC, Vt = %s\n",
			util.FormatValueFactor(p.Is, "A"), p.N, p.TempC, util.FormatValueFactor(vt, "V"))
		fmt.Fprintf(out, "%14s  %14s\n", "V", "I")
		printCurve(out, c, "V", "A", tableRows)

		fig := &chart.Figure{Title: "Diode I-V", XLabel: "V (V)", YLabel: "I (mA)"}
		fig.Add(fmt.Sprintf("n=%g", p.N), c.Scale(1e3))
		return saveChart(cmd, fig, cfg)
	}
	return cmd
}

func newMosfetCmd() *cobra.Command {
	var vgs []float64
	var transfer float64
	cmd := &cobra.Command{
		Use:   "mosfet",
		Short: "Sweep the NMOS output family Id(Vds), or the transfer curve with --transfer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, map[string]string{
				"mosfet.vth":     "vth",
				"mosfet.k":       "k",
				"mosfet.lambda":  "lambda",
				"mosfet.vds_max": "vds-max",
				"mosfet.vgs_max": "vgs-max",
				"mosfet.samples": "samples",
			})
			if err != nil {
				return err
			}
			p := cfg.Mosfet
			if cmd.Flags().Changed("vgs") {
				p.Vgs = vgs
			}
			m := &device.Mosfet{Vth: p.Vth, K: p.K, Lambda: p.Lambda}
			if err := m.Validate(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vth = %g V, K = %s/V², lambda = %g /V\n", p.Vth, util.FormatValueFactor(p.K, "A"), p.Lambda)

			fig := &chart.Figure{YLabel: "Id (mA)"}
			if cmd.Flags().Changed("transfer") {
				c, err := m.TransferCurve(transfer, 0, p.VgsMax, p.Samples)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "transfer curve at Vds = %g V\n", transfer)
				fmt.Fprintf(out, "%14s  %14s\n", "Vgs", "Id")
				printCurve(out, c, "V", "A", tableRows)
				fig.Title, fig.XLabel = "NMOS transfer characteristic", "Vgs (V)"
				fig.Add(fmt.Sprintf("Vds=%gV", transfer), c.Scale(1e3))
				return saveChart(cmd, fig, cfg)
			}

			family, err := m.OutputFamily(p.Vgs, 0, p.VdsMax, p.Samples)
			if err != nil {
				return err
			}
			logger.Printf("mosfet: %d curves", len(family))
			fig.Title, fig.XLabel = "NMOS output characteristic", "Vds (V)"
			for n, c := range family {
				last := c[len(c)-1]
				_, region := m.DrainCurrent(p.Vgs[n], last.X)
				fmt.Fprintf(out, "Vgs = %4g V  Id(%g V) = %s  [%s]\n",
					p.Vgs[n], last.X, util.FormatValueFactor(last.Y, "A"), region)
				fig.Add(fmt.Sprintf("Vgs=%gV", p.Vgs[n]), c.Scale(1e3))
			}
			return saveChart(cmd, fig, cfg)
		},
	}
	f := cmd.Flags()
	f.Float64("vth", 0, "threshold voltage (V)")
	f.Float64("k", 0, "transconductance coefficient (A/V²)")
	f.Float64("lambda", 0, "channel length modulation (1/V)")
	f.Float64("vds-max", 0, "output sweep stop (V)")
	f.Float64("vgs-max", 0, "transfer sweep stop (V)")
	f.Int("samples", 0, "sweep points")
	f.Float64SliceVar(&vgs, "vgs", nil, "gate voltages, one curve each (V)")
	f.Float64Var(&transfer, "transfer", 0, "plot Id(Vgs) at this Vds instead")
	return cmd
}

func newQPointCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qpoint",
		Short: "Find the diode operating point on a resistor load line",
		Args:  cobra.NoArgs,
	}
	bindings := diodeFlags(cmd)
	f := cmd.Flags()
	f.Float64("supply", 0, "supply voltage (V)")
	f.Float64("load", 0, "load resistance (Ω)")
	f.Bool("refine", false, "refine the nearest sample with Newton iteration")
	bindings["loadline.supply"] = "supply"
	bindings["loadline.load"] = "load"
	bindings["loadline.refine"] = "refine"

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, bindings)
		if err != nil {
			return err
		}
		p, ll := cfg.Diode, cfg.LoadLine
		d := newDiode(p)
		c, err := d.Curve(p.VMin, p.VMax, p.Samples)
		if err != nil {
			return err
		}
		q, err := loadline.Solve(c, ll.Supply, ll.Load)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "supply = %g V, load = %s\n", ll.Supply, util.FormatValueFactor(ll.Load, "Ω"))
		if !q.Found {
			fmt.Fprintf(out, "no Q-point in [%g, %g] V\n", p.VMin, p.VMax)
			return nil
		}
		logger.Printf("qpoint: sample %d brackets [%g, %g] V", q.Index, q.Lo, q.Hi)
		if ll.Refine {
			if q, err = loadline.Refine(d, q, ll.Supply, ll.Load); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "Q = (%s, %s)\n", util.FormatValueFactor(q.V, "V"), util.FormatValueFactor(q.I, "A"))

		line, err := curve.Sample(p.VMin, p.VMax, 2, func(v float64) (float64, error) {
			return loadline.Line(v, ll.Supply, ll.Load), nil
		})
		if err != nil {
			return err
		}
		fig := &chart.Figure{Title: "Load line", XLabel: "V (V)", YLabel: "I (mA)"}
		fig.Add("diode", c.Scale(1e3))
		fig.Add("load line", line.Scale(1e3))
		fig.Mark("Q", q.V, q.I*1e3)
		return saveChart(cmd, fig, cfg)
	}
	return cmd
}

// decimate keeps about rows evenly spaced points plus the last one.
func decimate(c curve.Curve, rows int) curve.Curve {
	if rows <= 0 || len(c) <= rows {
		return c
	}
	step := (len(c) + rows - 1) / rows
	var out curve.Curve
	for i := 0; i < len(c); i += step {
		out = append(out, c[i])
	}
	if (len(c)-1)%step != 0 {
		out = append(out, c[len(c)-1])
	}
	return out
}
