package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pidigits/service"
)

func (a *App) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pi digits over HTTP",
		Long: `Start the HTTP service.

Endpoints:
  GET /pidigits/?digits=N[&limit=L]
  GET /healthz
  GET /metrics`,
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}

	cmd.Flags().StringVar(&a.serveListen, "listen", "", "listen address (overrides config)")
	cmd.Flags().IntVar(&a.serveWorkers, "workers", 0, "concurrent computations (overrides config)")

	return cmd
}

func (a *App) runServe(cmd *cobra.Command, args []string) error {
	cfg := *a.cfg
	if a.serveListen != "" {
		cfg.Listen = a.serveListen
	}
	if a.serveWorkers != 0 {
		cfg.Workers = a.serveWorkers
	}
	if err := cfg.Validate(); err != nil {
		return exitWithCode(ExitValidation, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := service.New(&cfg, service.WithLogger(a.logger))
	if err := svc.ListenAndRun(ctx); err != nil {
		return exitWithCode(ExitRuntime, err)
	}
	return nil
}
