package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edp1096/semilab/pkg/convert"
	"github.com/edp1096/semilab/pkg/logic"
	"github.com/edp1096/semilab/pkg/resistor"
	"github.com/edp1096/semilab/pkg/util"
)

var errBadBit = errors.New("input must be 0 or 1")

func newOhmCmd() *cobra.Command {
	var v, i, r float64
	cmd := &cobra.Command{
		Use:   "ohm",
		Short: "Solve V = I*R for the missing quantity",
		Example: `  semilab ohm --voltage 5 --resistance 1000
  semilab ohm --current 0.002 --resistance 470`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value := func(name string, x float64) convert.Value {
				if cmd.Flags().Changed(name) {
					return convert.Known(x)
				}
				return convert.Unknown
			}
			res, err := convert.SolveOhmsLaw(value("voltage", v), value("current", i), value("resistance", r))
			if err != nil {
				return err
			}
			logger.Printf("ohm: solved %s", res.Solved)
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", res.Solved, util.FormatValueFactor(res.Value, res.Solved.Unit()))
			return nil
		},
	}
	cmd.Flags().Float64Var(&v, "voltage", 0, "voltage (V)")
	cmd.Flags().Float64Var(&i, "current", 0, "current (A)")
	cmd.Flags().Float64Var(&r, "resistance", 0, "resistance (Ω)")
	return cmd
}

func newPhotonCmd() *cobra.Command {
	var nm, ev float64
	cmd := &cobra.Command{
		Use:   "photon",
		Short: "Convert between photon wavelength and energy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case cmd.Flags().Changed("nm"):
				e, err := convert.PhotonEnergy(nm)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "E = %.4f eV (λ = %g nm)\n", e, nm)
			case cmd.Flags().Changed("ev"):
				l, err := convert.Wavelength(ev)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "λ = %.2f nm (E = %g eV)\n", l, ev)
			default:
				return errors.New("one of --nm or --ev is required")
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&nm, "nm", 0, "wavelength (nm)")
	cmd.Flags().Float64Var(&ev, "ev", 0, "photon energy (eV)")
	cmd.MarkFlagsMutuallyExclusive("nm", "ev")
	return cmd
}

func newResistorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "resistor BAND1 BAND2 MULTIPLIER TOLERANCE",
		Short:   "Decode a 4-band resistor color code",
		Example: "  semilab resistor brown black red gold",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			bands := make([]resistor.Color, len(args))
			for n, name := range args {
				c, err := resistor.ParseColor(name)
				if err != nil {
					return err
				}
				bands[n] = c
			}

			allowed := [][]resistor.Color{resistor.Digits(), resistor.Digits(), resistor.Multipliers(), resistor.Tolerances()}
			labels := []string{"band 1", "band 2", "multiplier", "tolerance"}
			for n, c := range bands {
				if !slices.Contains(allowed[n], c) {
					return fmt.Errorf("%s cannot be %s", labels[n], c)
				}
			}

			rd := resistor.Decode(bands[0], bands[1], bands[2], bands[3])
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, rd)
			fmt.Fprintf(out, "range %s .. %s\n", util.FormatValueFactor(rd.Min(), "Ω"), util.FormatValueFactor(rd.Max(), "Ω"))
			return nil
		},
	}
}

func newGateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gate NAME [A [B]]",
		Short: "Print a logic gate truth table, optionally evaluating one input",
		Long: "Gates: " + strings.Join(gateNames(), ", ") + `.
Without inputs the whole truth table is printed. With inputs the matching row
is marked and the output is printed.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := logic.ParseGate(args[0])
			if err != nil {
				return err
			}
			inputs := args[1:]
			if len(inputs) != 0 && len(inputs) != g.Arity() {
				return fmt.Errorf("%s takes %d input(s), got %d", g, g.Arity(), len(inputs))
			}
			bits := make([]bool, 2)
			for n, s := range inputs {
				switch s {
				case "0":
				case "1":
					bits[n] = true
				default:
					return fmt.Errorf("%w: %q", errBadBit, s)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s gate\n", g)
			if g.Arity() == 1 {
				fmt.Fprintln(out, "  A | Y")
			} else {
				fmt.Fprintln(out, "  A B | Y")
			}
			for _, row := range logic.TruthTable(g) {
				mark := " "
				if len(inputs) > 0 && row.A == bits[0] && (g.Arity() == 1 || row.B == bits[1]) {
					mark = ">"
				}
				if g.Arity() == 1 {
					fmt.Fprintf(out, "%s %d | %d\n", mark, logic.Bit(row.A), logic.Bit(row.Y))
				} else {
					fmt.Fprintf(out, "%s %d %d | %d\n", mark, logic.Bit(row.A), logic.Bit(row.B), logic.Bit(row.Y))
				}
			}
			if len(inputs) > 0 {
				fmt.Fprintf(out, "Y = %d\n", logic.Bit(logic.Evaluate(g, bits[0], bits[1])))
			}
			return nil
		},
	}
}

func gateNames() []string {
	var names []string
	for _, g := range logic.Gates() {
		names = append(names, g.String())
	}
	return names
}
