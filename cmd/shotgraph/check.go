package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hammamikhairi/shotgraph/internal/config"
	"github.com/hammamikhairi/shotgraph/internal/display"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Analyze every preset and report failures",
	Args:  cobra.NoArgs,
	RunE:  runWithApp(runCheck),
}

func init() {
	checkCmd.Flags().Int("concurrency", 4, "number of presets analyzed at once")
	_ = viper.BindPFlag(config.KeyConcurrency, checkCmd.Flags().Lookup("concurrency"))

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string, a *app) error {
	reports, err := a.engine.AnalyzeAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("checking presets: %w", err)
	}

	rows := make([]display.ReportRow, len(reports))
	failed := 0
	for i, r := range reports {
		rows[i] = display.ReportRow{
			Name:    r.Name,
			Title:   r.Title,
			Steps:   r.Steps,
			Elapsed: r.ElapsedTime,
			Err:     r.Err,
		}
		if !r.OK() {
			failed++
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), display.RenderReport(rows))

	if failed > 0 {
		return fmt.Errorf("%d of %d presets failed", failed, len(reports))
	}
	return nil
}
