package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after defaults, wildlog.yaml, WILDLOG_*
environment variables and flags have been applied, as YAML. Secrets are
redacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContextWithoutStore(cmd)
			cfg := cmdCtx.Cfg.Redacted()
			r := cmdCtx.Renderer

			if cmdCtx.Cfg.File == "" {
				r.Warn("no config file found, showing defaults with env and flag overrides")
			}

			enc := yaml.NewEncoder(r.Out())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			return enc.Close()
		},
	}
}
