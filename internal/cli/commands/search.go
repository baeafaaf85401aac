package commands

import (
	"fmt"

	"github.com/leapstack-labs/wildlog/pkg/core"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <species>",
		Short: "Find sightings of a species",
		Long: `Find sightings whose species matches the argument, ignoring case.

Exits with an error when nothing matches.`,
		Example: `  wildlog search fox
  wildlog search "Barn Owl" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			found, err := cmdCtx.Service.SearchBySpecies(cmd.Context(), args[0])
			if err != nil {
				if core.IsNotFound(err) {
					return fmt.Errorf("no sightings found for species %q", args[0])
				}
				return err
			}
			return cmdCtx.Renderer.Sightings(found)
		},
	}
}
