package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/libscan/internal/app"
)

func (c *CLI) newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape [categories...]",
		Short: "Resolve the imports of every application in the given categories",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scan, _ := cmd.Flags().GetBool("scan")
			skipOnDepth, _ := cmd.Flags().GetBool("skip-on-depth")

			return c.app.Scrape(cmd.Context(), args, app.ScrapeOptions{
				Scan:        scan,
				SkipOnDepth: skipOnDepth,
			})
		},
	}
	cmd.Flags().Bool("scan", false, "Read imports from the application sources instead of checker reports")
	cmd.Flags().Bool("skip-on-depth", false, "Skip applications whose substitution exceeds the depth bound")
	return cmd
}
