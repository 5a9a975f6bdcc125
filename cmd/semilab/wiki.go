package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/edp1096/semilab/pkg/wiki"
)

func newWikiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wiki [TOPIC]",
		Short: "Read the semiconductor wiki, or list its topics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, t := range wiki.Topics() {
					fmt.Fprintf(out, "%-14s %s\n", t.Key, t.Title)
				}
				return nil
			}
			t, err := wiki.Lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "# %s\n\n%s\n", t.Title, t.Body)
			return nil
		},
	}
}

func newFabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fab [STEP]",
		Short: "Walk the photolithography flow, or show one step (1-based)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			steps := wiki.Steps()
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("step number: %w", err)
				}
				s, err := wiki.StepAt(n)
				if err != nil {
					return err
				}
				steps = []wiki.Step{s}
			}
			for _, s := range steps {
				fmt.Fprintf(out, "[%3.0f%%] %d. %s\n       %s\n", s.Progress()*100, int(s)+1, s, s.Description())
			}
			return nil
		},
	}
}
