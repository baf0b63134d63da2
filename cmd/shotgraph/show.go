package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/shotgraph/internal/config"
	"github.com/hammamikhairi/shotgraph/internal/display"
	"github.com/hammamikhairi/shotgraph/internal/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <name|number>",
	Short: "Chart a preset",
	Long:  "Analyze a preset and print its chart, or its traces as JSON or YAML.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWithApp(runShow),
}

func init() {
	showCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	showCmd.Flags().Int("width", 72, "chart width in columns")
	showCmd.Flags().Int("height", 16, "chart height in rows")

	_ = viper.BindPFlag(config.KeyChartWidth, showCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag(config.KeyChartHeight, showCmd.Flags().Lookup("height"))

	rootCmd.AddCommand(showCmd)
}

// shownPreset is the structured output of show.
type shownPreset struct {
	Preset  *domain.Preset          `json:"preset" yaml:"preset"`
	Profile *domain.AnalyzedProfile `json:"profile" yaml:"profile"`
}

func runShow(cmd *cobra.Command, args []string, a *app) error {
	format, _ := cmd.Flags().GetString("format")
	ctx := cmd.Context()

	p, err := resolvePreset(ctx, a.engine, args[0])
	if err != nil {
		return err
	}
	profile, analyzeErr := a.engine.Analyze(ctx, p.Name)

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		chart := display.NewChart(a.cfg.ChartWidth, a.cfg.ChartHeight)
		fmt.Fprintln(out, display.RenderPresetDetail(p, profile, analyzeErr, chart))
		return nil

	case "json":
		if analyzeErr != nil {
			return analyzeErr
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(shownPreset{Preset: p, Profile: profile})

	case "yaml":
		if analyzeErr != nil {
			return analyzeErr
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(shownPreset{Preset: p, Profile: profile}); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}
