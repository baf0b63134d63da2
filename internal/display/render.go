package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/hammamikhairi/shotgraph/internal/domain"
)

const aboutMarkdown = `# About

Hello Decent Community!

**shotgraph** charts the advanced shot profiles of the Decent espresso
machine. Each profile is a list of steps; every step drives either the
pressure or the flow of the pump for a number of seconds while holding a
water temperature.

- **pressure** (bar) and **flow** (mL/s) share the left axis, 0 to 12
- **temperature** (°C) uses the right axis, 20 to 100
- a step that exits early on a flow threshold restarts the next flow step
  from that threshold
`

// RenderMarkdown renders md for the terminal, wrapped at width columns.
// If the renderer fails the raw markdown is returned.
func RenderMarkdown(md string, width int) string {
	var opts []glamour.TermRendererOption
	opts = append(opts, glamour.WithAutoStyle())
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// RenderAbout returns the about page.
func RenderAbout(width int) string {
	return RenderMarkdown(aboutMarkdown, width)
}

// RenderPresetList returns a numbered listing of presets.
func RenderPresetList(list []domain.PresetSummary) string {
	if len(list) == 0 {
		return secondaryStyle.Render("  no presets")
	}

	titleW := 0
	for _, s := range list {
		titleW = max(titleW, len(s.Title))
	}

	var b strings.Builder
	for i, s := range list {
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("  %2d. ", i+1)))
		b.WriteString(stepStyle.Render(fmt.Sprintf("%-*s", titleW, s.Title)))
		b.WriteString(secondaryStyle.Render("  " + s.Name))
		if meta := summaryMeta(s.Author, s.Beverage); meta != "" {
			b.WriteString(secondaryStyle.Render("  " + meta))
		}
		if i < len(list)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func summaryMeta(author, beverage string) string {
	var parts []string
	if author != "" {
		parts = append(parts, "by "+author)
	}
	if beverage != "" {
		parts = append(parts, beverage)
	}
	return strings.Join(parts, ", ")
}

// RenderPresetDetail returns the title, chart and notes of a preset. When
// the analysis failed, analyzeErr is shown in place of the chart.
func RenderPresetDetail(p *domain.Preset, profile *domain.AnalyzedProfile, analyzeErr error, c Chart) string {
	var b strings.Builder

	b.WriteString(stepStyle.Render("  " + p.Title))
	if meta := summaryMeta(p.Author, p.Beverage); meta != "" {
		b.WriteString(secondaryStyle.Render("  (" + meta + ")"))
	}
	b.WriteString("\n\n")

	switch {
	case analyzeErr != nil:
		b.WriteString(urgentOutputStyle.Render("  cannot chart this preset: " + analyzeErr.Error()))
		b.WriteByte('\n')
	case profile != nil:
		b.WriteString(c.Render(profile))
		b.WriteByte('\n')
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("  %.0f seconds, %d pressure / %d flow / %d temperature segments",
			profile.ElapsedTime, len(profile.Pressure), len(profile.Flow), len(profile.Temperature))))
		b.WriteByte('\n')
	}

	if notes := strings.TrimSpace(p.Notes); notes != "" {
		b.WriteString(RenderMarkdown(notes, c.Width+12))
	}
	return b.String()
}

// ReportRow is one line of a catalog check.
type ReportRow struct {
	Name    string
	Title   string
	Steps   int
	Elapsed float64
	Err     error
}

// RenderReport returns a table of check results followed by a totals line.
func RenderReport(rows []ReportRow) string {
	titleW := len("preset")
	for _, r := range rows {
		titleW = max(titleW, len(r.Title))
	}

	var b strings.Builder
	b.WriteString(secondaryStyle.Render(fmt.Sprintf("  %-*s  %5s  %8s  %s", titleW, "preset", "steps", "seconds", "status")))
	b.WriteByte('\n')

	failed := 0
	for _, r := range rows {
		line := fmt.Sprintf("  %-*s  %5d  %8.0f  ", titleW, r.Title, r.Steps, r.Elapsed)
		if r.Err != nil {
			failed++
			b.WriteString(line + urgentOutputStyle.Render("FAIL "+r.Err.Error()))
		} else {
			b.WriteString(line + stepStyle.Render("ok"))
		}
		b.WriteByte('\n')
	}

	b.WriteString(sepStyle.Render(fmt.Sprintf("  %d presets, %d failed", len(rows), failed)))
	b.WriteByte('\n')
	return b.String()
}
