package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/shotgraph/internal/display"
	"github.com/hammamikhairi/shotgraph/internal/domain"
	"github.com/hammamikhairi/shotgraph/internal/engine"
	"github.com/hammamikhairi/shotgraph/internal/logger"
	"github.com/hammamikhairi/shotgraph/internal/prompt"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse presets interactively",
	Args:  cobra.NoArgs,
	RunE:  runWithApp(runBrowse),
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string, a *app) error {
	// Cancelled when the UI quits.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	b := &browser{
		engine: a.engine,
		parser: prompt.NewKeywordParser(a.log.Named("prompt")),
		log:    a.log,
		chart:  display.NewChart(min(a.cfg.ChartWidth, display.TermWidth()-12), a.cfg.ChartHeight),
		cached: a.store.Len,
	}
	ui := display.NewUI(b.status)
	b.out = ui

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run browser logic in a background goroutine.
	go func() {
		ui.WaitReady()
		b.run(ctx, ui.InputChan())
		ui.Quit()
	}()

	// Bubble Tea owns the terminal. Blocks until quit.
	err := ui.Run()
	cancel()
	return err
}

// output is the part of display.UI the browser writes to.
type output interface {
	Println(a ...interface{})
	PrintInfo(text string)
	PrintHeading(text string)
	PrintHint(text string)
	PrintUrgent(text string)
}

type browser struct {
	engine *engine.Engine
	parser domain.IntentParser
	log    *logger.Logger
	out    output
	chart  display.Chart
	cached func() int

	mu       sync.Mutex
	selected *domain.Preset
	results  []domain.PresetSummary // last listing, numbered from 1
}

// status feeds the UI status bar.
func (b *browser) status() []display.StatusItem {
	b.mu.Lock()
	title := "none"
	if b.selected != nil {
		title = b.selected.Title
	}
	b.mu.Unlock()

	return []display.StatusItem{
		{Label: "preset", Value: title},
		{Label: "charted", Value: strconv.Itoa(b.cached())},
	}
}

// run handles input lines until the channel closes, the context ends or
// the user quits.
func (b *browser) run(ctx context.Context, input <-chan string) {
	b.showPresets(ctx)

	for {
		var line string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case line, ok = <-input:
			if !ok {
				return
			}
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		intent, err := b.parser.Parse(ctx, line)
		if err != nil {
			b.log.Error("parsing input: %v", err)
			continue
		}

		b.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		if !b.handleIntent(ctx, intent) {
			return
		}
	}
}

// handleIntent performs one intent and reports whether to keep going.
func (b *browser) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentHelp:
		b.showHelp()
	case domain.IntentListPresets:
		b.showPresets(ctx)
	case domain.IntentSelectPreset:
		b.selectPreset(ctx, intent.Payload)
	case domain.IntentShowPreset:
		if intent.Payload != "" {
			b.selectPreset(ctx, intent.Payload)
		} else {
			b.showSelected(ctx)
		}
	case domain.IntentSearch:
		b.search(ctx, intent.Payload)
	case domain.IntentAbout:
		b.out.Println(display.RenderAbout(b.chart.Width + 12))
	case domain.IntentQuit:
		b.out.PrintInfo("Bye.")
		return false
	default:
		b.out.PrintHint(fmt.Sprintf("Didn't catch %q. Type 'help' for commands.", intent.Payload))
	}
	return true
}

func (b *browser) showPresets(ctx context.Context) {
	list, err := b.engine.ListPresets(ctx)
	if err != nil {
		b.out.PrintUrgent(fmt.Sprintf("Error loading presets: %v", err))
		return
	}
	b.setResults(list)

	b.out.PrintHeading("Presets:")
	b.out.Println(display.RenderPresetList(list))
	b.out.PrintInfo("Pick a preset by number, or type 'help' for commands.")
}

func (b *browser) search(ctx context.Context, query string) {
	list, err := b.engine.SearchPresets(ctx, query)
	if err != nil {
		b.out.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	b.setResults(list)

	b.out.PrintHeading(fmt.Sprintf("Matches for %q:", query))
	b.out.Println(display.RenderPresetList(list))
}

func (b *browser) setResults(list []domain.PresetSummary) {
	b.mu.Lock()
	b.results = list
	b.mu.Unlock()
}

// selectPreset picks by number from the last listing, or by name or title.
func (b *browser) selectPreset(ctx context.Context, ref string) {
	var (
		p   *domain.Preset
		err error
	)

	b.mu.Lock()
	results := b.results
	b.mu.Unlock()

	if n, convErr := strconv.Atoi(ref); convErr == nil && len(results) > 0 {
		if n < 1 || n > len(results) {
			b.out.PrintHint(fmt.Sprintf("No preset number %d. Pick 1 to %d.", n, len(results)))
			return
		}
		p, err = b.engine.GetPreset(ctx, results[n-1].Name)
	} else {
		p, err = resolvePreset(ctx, b.engine, ref)
	}
	if err != nil {
		if engine.IsUnknownPreset(err) {
			b.out.PrintHint(fmt.Sprintf("No preset called %q.", ref))
			return
		}
		b.out.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	b.mu.Lock()
	b.selected = p
	b.mu.Unlock()

	b.showSelected(ctx)
}

func (b *browser) showSelected(ctx context.Context) {
	b.mu.Lock()
	p := b.selected
	b.mu.Unlock()

	if p == nil {
		b.out.PrintHint("Pick a preset first.")
		return
	}

	profile, err := b.engine.Analyze(ctx, p.Name)
	if err != nil {
		b.log.Warn("analyze %s: %v", p.Name, err)
	}
	b.out.Println(display.RenderPresetDetail(p, profile, err, b.chart))
}

func (b *browser) showHelp() {
	b.out.PrintHeading("Commands:")
	b.out.PrintInfo("  list / presets   Show all presets")
	b.out.PrintInfo("  1, 2, 3...       Chart a preset from the last listing")
	b.out.PrintInfo("  pick <name>      Chart a preset by name or title")
	b.out.PrintInfo("  show             Chart the selected preset again")
	b.out.PrintInfo("  search <text>    Find presets by name, title, notes or author")
	b.out.PrintInfo("  about            What the chart shows")
	b.out.PrintInfo("  help             Show this message")
	b.out.PrintInfo("  quit / exit      Leave the browser")
}
