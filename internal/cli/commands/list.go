package commands

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded sightings",
		Long: `List every sighting in the store.

Output adapts to environment:
  - Terminal: table
  - Piped/Scripted: JSON array

Use --output to override: auto, text, json`,
		Example: `  # List sightings (auto-detect output format)
  wildlog list

  # List sightings as JSON
  wildlog list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := cmdCtx.Service.List(cmd.Context())
			if err != nil {
				return err
			}
			return cmdCtx.Renderer.Sightings(list)
		},
	}
}
