package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/libscan/internal/app"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute cross-category statistics from the curated library listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, _ := cmd.Flags().GetBool("table")

			return c.app.Stats(cmd.Context(), app.StatsOptions{
				Table: table,
				Out:   cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().BoolP("table", "t", false, "Print a summary table")
	return cmd
}
