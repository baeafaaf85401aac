package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/wildlog/internal/api"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the sightings HTTP service",
		Long: `Start the HTTP service that records, lists, searches, updates and
deletes wildlife sightings.

The service runs until interrupted (Ctrl+C or SIGTERM) and then drains
in-flight requests for up to server.shutdown_timeout.`,
		Example: `  # Serve against the configured PostgreSQL store
  wildlog serve

  # Local development against a SQLite file
  wildlog serve --store-type sqlite --dsn sightings.db --init-schema

  # Listen on another address
  wildlog serve --addr 127.0.0.1:9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd)
		},
	}
}

func runServe(ctx context.Context, cmd *cobra.Command) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := cmdCtx.Cfg
	cmdCtx.Logger.Info("store connected",
		"type", cfg.Store.Type,
		"init_schema", cfg.Store.InitSchema,
		"validate_updates", cfg.API.ValidateUpdates)

	srv := api.NewServer(api.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Service:         cmdCtx.Service,
		Logger:          cmdCtx.Logger,
	})

	return srv.Serve(ctx)
}
