package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/shotgraph/internal/display"
	"github.com/hammamikhairi/shotgraph/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available presets",
	Args:  cobra.NoArgs,
	RunE:  runWithApp(runList),
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "only show presets whose name, title, notes or author match")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string, a *app) error {
	query, _ := cmd.Flags().GetString("search")

	var (
		list []domain.PresetSummary
		err  error
	)
	if query != "" {
		list, err = a.engine.SearchPresets(cmd.Context(), query)
	} else {
		list, err = a.engine.ListPresets(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("listing presets: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), display.RenderPresetList(list))
	return nil
}
