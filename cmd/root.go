package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"mortgage-strategy/config"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "mortgage-strategy",
		Short:        "Compare mortgage payoff strategies",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	load := func(ctx context.Context) (*Dependencies, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		return InitializeDependencies(ctx, cfg)
	}

	root.AddCommand(
		newServeCmd(load),
		newSimulateCmd(load),
		newSensitivityCmd(load),
	)
	return root
}

type dependencyLoader func(ctx context.Context) (*Dependencies, error)

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
