package display

import (
	"errors"
	"strings"
	"testing"

	"github.com/hammamikhairi/shotgraph/internal/domain"
)

func pressureProfile() *domain.AnalyzedProfile {
	return &domain.AnalyzedProfile{
		Temperature: []domain.Segment{{X1: 0, Y1: 92, X2: 10, Y2: 92}},
		Pressure: []domain.Segment{
			{X1: 0, Y1: 0, X2: 0, Y2: 6},
			{X1: 0, Y1: 6, X2: 10, Y2: 6},
		},
		ElapsedTime: 10,
	}
}

func TestChartGrid(t *testing.T) {
	c := NewChart(21, 13)
	g := c.grid(pressureProfile())

	if len(g) != 13 || len(g[0]) != 21 {
		t.Fatalf("expected 13x21 grid, got %dx%d", len(g), len(g[0]))
	}

	tests := []struct {
		name     string
		row, col int
		want     cell
	}{
		{"pressure run", 6, 10, cell{r: '─', ch: ChannelPressure}},
		{"pressure run end", 6, 20, cell{r: '─', ch: ChannelPressure}},
		{"pressure ramp", 9, 0, cell{r: '│', ch: ChannelPressure}},
		{"temperature run", 1, 15, cell{r: '─', ch: ChannelTemperature}},
		{"empty", 3, 5, cell{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g[tt.row][tt.col]; got != tt.want {
				t.Fatalf("cell (%d,%d): expected %+v, got %+v", tt.row, tt.col, tt.want, got)
			}
		})
	}
}

func TestChartGridDiagonal(t *testing.T) {
	c := NewChart(21, 13)
	g := c.grid(&domain.AnalyzedProfile{
		Flow:        []domain.Segment{{X1: 0, Y1: 0, X2: 10, Y2: 12}},
		ElapsedTime: 10,
	})
	if got := g[12][0]; got.r != '·' || got.ch != ChannelFlow {
		t.Fatalf("expected diagonal start, got %+v", got)
	}
	if got := g[0][20]; got.r != '·' {
		t.Fatalf("expected diagonal end, got %+v", got)
	}
}

func TestChartClampsOutOfRange(t *testing.T) {
	c := NewChart(20, 6)
	// Values beyond the axis must not index outside the grid.
	c.grid(&domain.AnalyzedProfile{
		Pressure:    []domain.Segment{{X1: -5, Y1: 40, X2: 50, Y2: -3}},
		Temperature: []domain.Segment{{X1: 0, Y1: 130, X2: 10, Y2: 0}},
		ElapsedTime: 10,
	})
}

func TestNewChartMinimum(t *testing.T) {
	c := NewChart(1, 1)
	if c.Width != minChartWidth || c.Height != minChartHeight {
		t.Fatalf("expected minimum size, got %dx%d", c.Width, c.Height)
	}
}

func TestChartRender(t *testing.T) {
	out := NewChart(40, 8).Render(pressureProfile())
	for _, want := range []string{"0s", "10s", "pressure", "flow", "temperature", "┤"} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPresetList(t *testing.T) {
	out := RenderPresetList([]domain.PresetSummary{
		{Name: "londinium.tcl", Title: "Londinium", Author: "Decent", Beverage: "espresso"},
		{Name: "pourover_filter.tcl", Title: "Pour over"},
	})
	for _, want := range []string{"1.", "Londinium", "londinium.tcl", "by Decent", "2.", "Pour over"} {
		if !strings.Contains(out, want) {
			t.Fatalf("list missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(RenderPresetList(nil), "no presets") {
		t.Fatal("empty list should say so")
	}
}

func TestRenderPresetDetail(t *testing.T) {
	p := &domain.Preset{Name: "x.tcl", Title: "Example", Notes: "Grind fine."}

	out := RenderPresetDetail(p, pressureProfile(), nil, NewChart(30, 8))
	if !strings.Contains(out, "Example") || !strings.Contains(out, "10 seconds") {
		t.Fatalf("unexpected detail:\n%s", out)
	}
	if !strings.Contains(out, "Grind fine.") {
		t.Fatalf("notes missing:\n%s", out)
	}

	out = RenderPresetDetail(p, nil, errors.New("step 2: missing required prop: pump"), NewChart(30, 8))
	if !strings.Contains(out, "cannot chart this preset") || !strings.Contains(out, "pump") {
		t.Fatalf("error state missing:\n%s", out)
	}
}

func TestRenderAbout(t *testing.T) {
	if out := RenderAbout(80); !strings.Contains(out, "Hello Decent Community!") {
		t.Fatalf("about page missing greeting:\n%s", out)
	}
}

func TestRenderReport(t *testing.T) {
	out := RenderReport([]ReportRow{
		{Name: "a.tcl", Title: "Alpha", Steps: 3, Elapsed: 42},
		{Name: "b.tcl", Title: "Beta", Err: errors.New("step 1: missing required prop: pump")},
	})
	for _, want := range []string{"preset", "Alpha", "42", "ok", "Beta", "FAIL step 1", "2 presets, 1 failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
