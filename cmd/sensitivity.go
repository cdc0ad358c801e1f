package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"mortgage-strategy/domain"
	"mortgage-strategy/report"
)

type sensitivityOptions struct {
	scenario string
	field    string
	min      float64
	max      float64
	steps    int
	asJSON   bool
}

func newSensitivityCmd(load dependencyLoader) *cobra.Command {
	var opts sensitivityOptions

	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Sweep one input across a range and see which strategy wins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer CloseDependencies(deps)

			return runSensitivity(cmd, deps, opts)
		},
	}

	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "YAML scenario file")
	cmd.Flags().StringVar(&opts.field, "field", "mortgageRate", "input to sweep")
	cmd.Flags().Float64Var(&opts.min, "min", 0, "first value")
	cmd.Flags().Float64Var(&opts.max, "max", 0, "last value")
	cmd.Flags().IntVar(&opts.steps, "steps", 7, "number of values, ends included")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func runSensitivity(cmd *cobra.Command, deps *Dependencies, opts sensitivityOptions) error {
	cfg, err := loadScenario(opts.scenario)
	if err != nil {
		return err
	}

	result, err := deps.Sensitivity.Sweep(cmd.Context(), domain.SweepRequest{
		Config: cfg,
		Field:  opts.field,
		Min:    opts.min,
		Max:    opts.max,
		Steps:  opts.steps,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\tBest\t", result.Field)
	for _, kind := range domain.RankedStrategies {
		fmt.Fprintf(tw, "%s\t", kind.DisplayName())
	}
	fmt.Fprintln(tw)

	for _, p := range result.Points {
		fmt.Fprintf(tw, "%g\t%s\t", p.Value, p.Best.DisplayName())
		for _, kind := range domain.RankedStrategies {
			fmt.Fprintf(tw, "%s\t", report.Dollars(p.NetPositions[kind]))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nMost often best: %s\n", result.Dominant.DisplayName())
	for _, s := range result.Spreads {
		if s.Wins == 0 {
			continue
		}
		fmt.Fprintf(out, "  %s wins %d of %d, from %g to %g\n",
			s.Strategy.DisplayName(), s.Wins, len(result.Points), *s.WinsFrom, *s.WinsTo)
	}
	return nil
}
