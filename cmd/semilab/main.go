package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/edp1096/semilab/internal/config"
	"github.com/edp1096/semilab/pkg/chart"
	"github.com/edp1096/semilab/pkg/curve"
	"github.com/edp1096/semilab/pkg/util"
)

var (
	cfgFile string
	outFile string
	verbose bool

	logger = log.New(io.Discard, "semilab: ", log.Ltime)
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "semilab",
		Short:         "Semiconductor teaching-lab calculators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetOutput(cmd.ErrOrStderr())
			} else {
				logger.SetOutput(io.Discard)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.StringVarP(&outFile, "out", "o", "", "write a chart (.png, .svg, .pdf or .html)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "trace progress on stderr")

	root.AddCommand(
		newOhmCmd(),
		newPhotonCmd(),
		newResistorCmd(),
		newGateCmd(),
		newFermiCmd(),
		newDiodeCmd(),
		newMosfetCmd(),
		newOxideCmd(),
		newImplantCmd(),
		newQPointCmd(),
		newWikiCmd(),
		newFabCmd(),
	)
	return root
}

// loadConfig layers defaults, the --config file, SEMILAB_* env vars and the
// command's own flags. bindings maps a config key to a flag name.
func loadConfig(cmd *cobra.Command, bindings map[string]string) (*config.Config, error) {
	v := config.New()
	if err := config.Read(v, cfgFile); err != nil {
		return nil, err
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	cfg, err := config.Decode(v)
	if err != nil {
		return nil, err
	}
	if v.ConfigFileUsed() != "" {
		logger.Printf("config %s", v.ConfigFileUsed())
	}
	return cfg, nil
}

// printCurve prints about rows lines of c.
func printCurve(w io.Writer, c curve.Curve, xunit, yunit string, rows int) {
	for _, p := range decimate(c, rows) {
		fmt.Fprintf(w, "%14s  %14s\n", util.FormatValueFactor(p.X, xunit), util.FormatValueFactor(p.Y, yunit))
	}
}

// saveChart writes fig to --out, if given.
func saveChart(cmd *cobra.Command, fig *chart.Figure, cfg *config.Config) error {
	if outFile == "" {
		return nil
	}
	if err := fig.Save(outFile, cfg.Chart.Width, cfg.Chart.Height); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	logger.Printf("chart %s (%d series)", outFile, len(fig.Series))
	fmt.Fprintf(cmd.OutOrStdout(), "chart written to %s\n", outFile)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("semilab: %v", err)
	}
}
