// Package commands implements the wildlog subcommands.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/wildlog/internal/cli/config"
	"github.com/leapstack-labs/wildlog/internal/cli/output"
	"github.com/leapstack-labs/wildlog/internal/sightings"
	"github.com/leapstack-labs/wildlog/internal/store"
	"github.com/leapstack-labs/wildlog/pkg/adapter"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Adapter  adapter.Adapter
	Store    *store.SQLStore
	Service  *sightings.Service
	Renderer *output.Renderer
}

// NewCommandContext opens the configured store and builds the service.
// Returns the context and a cleanup function that must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cmdCtx := NewCommandContextWithoutStore(cmd)
	cfg, logger := cmdCtx.Cfg, cmdCtx.Logger

	adp, err := adapter.NewAdapter(cfg.ToAdapterConfig(), logger)
	if err != nil {
		return nil, nil, err
	}
	if err := adp.Connect(cmd.Context(), cfg.ToAdapterConfig()); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s store: %w", cfg.Store.Type, err)
	}

	cleanup := func() {
		_ = adp.Close()
	}

	st, err := store.New(adp.Handle(), adp.Dialect(), logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	if cfg.Store.InitSchema {
		if err := st.InitSchema(cmd.Context()); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	cmdCtx.Adapter = adp
	cmdCtx.Store = st
	cmdCtx.Service = sightings.NewService(st, sightings.Options{
		ValidateUpdates: cfg.API.ValidateUpdates,
	}, logger)

	return cmdCtx, cleanup, nil
}

// NewCommandContextWithoutStore creates a CommandContext without a store.
// Useful for commands that don't need database access.
func NewCommandContextWithoutStore(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}
