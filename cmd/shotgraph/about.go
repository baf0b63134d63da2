package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/shotgraph/internal/display"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show what shotgraph charts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), display.RenderAbout(80))
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
