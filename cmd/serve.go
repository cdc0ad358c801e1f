package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpLayer "mortgage-strategy/http"
)

func newServeCmd(load dependencyLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer CloseDependencies(deps)

			return serve(deps)
		},
	}
}

func serve(deps *Dependencies) error {
	cfg := deps.Config.Server
	log := deps.Logger

	server := &http.Server{
		Addr: cfg.Addr,
		Handler: httpLayer.NewRouter(httpLayer.RouterDeps{
			Simulations: deps.Simulations,
			Sensitivity: deps.Sensitivity,
			Limiter:     deps.Limiter,
			Logger:      log,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("API listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		log.Errorw("error starting server", "error", err)
		return err
	case <-quit:
		log.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorw("error during server shutdown", "error", err)
		return err
	}

	log.Info("server exited")
	return nil
}
