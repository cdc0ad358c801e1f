package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"mortgage-strategy/report"
)

type simulateOptions struct {
	scenario string
	chartCSV string
	debugCSV string
	asJSON   bool
}

func newSimulateCmd(load dependencyLoader) *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run every payoff strategy for a scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer CloseDependencies(deps)

			return runSimulate(cmd, deps, opts)
		},
	}

	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "YAML scenario file")
	cmd.Flags().StringVar(&opts.chartCSV, "csv", "", "write the yearly chart series to this CSV file")
	cmd.Flags().StringVar(&opts.debugCSV, "debug-csv", "", "write the LOC strategy trace to this CSV file")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the full result as JSON")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func runSimulate(cmd *cobra.Command, deps *Dependencies, opts simulateOptions) error {
	cfg, err := loadScenario(opts.scenario)
	if err != nil {
		return err
	}

	result, err := deps.Simulations.Run(cmd.Context(), "", cfg)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if opts.chartCSV != "" {
		err := writeFile(opts.chartCSV, func(w io.Writer) error {
			return report.WriteChartCSV(w, result.ChartData)
		})
		if err != nil {
			return err
		}
	}
	if opts.debugCSV != "" {
		err := writeFile(opts.debugCSV, func(w io.Writer) error {
			return report.WriteDebugCSV(w, result.Accelerated.DebugTrace)
		})
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		result.Accelerated.DebugTrace = nil
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if err := report.WriteStrategyTable(out, result); err != nil {
		return err
	}
	if result.Explanation != "" {
		fmt.Fprintf(out, "\n%s\n", result.Explanation)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
