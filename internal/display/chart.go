package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/shotgraph/internal/domain"
)

// Channel identifies one trace of an analyzed profile.
type Channel int

const (
	ChannelTemperature Channel = iota
	ChannelPressure
	ChannelFlow
)

func (c Channel) String() string {
	switch c {
	case ChannelTemperature:
		return "temperature"
	case ChannelPressure:
		return "pressure"
	case ChannelFlow:
		return "flow"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// Value ranges of each channel on the y axis. Pressure (bar) and flow
// (mL/s) share one axis; temperature (°C) has its own.
var (
	temperatureRange = [2]float64{20, 100}
	pumpRange        = [2]float64{0, 12}
)

func (c Channel) yRange() [2]float64 {
	if c == ChannelTemperature {
		return temperatureRange
	}
	return pumpRange
}

var channelStyles = [...]lipgloss.Style{
	ChannelTemperature: lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5")),
	ChannelPressure:    lipgloss.NewStyle().Foreground(lipgloss.Color("#bbf7d0")),
	ChannelFlow:        lipgloss.NewStyle().Foreground(lipgloss.Color("#bae6fd")),
}

const (
	minChartWidth  = 20
	minChartHeight = 6
)

// Chart draws the three traces of a profile into a character grid.
type Chart struct {
	Width  int
	Height int
}

// NewChart returns a chart of the given plot size, raised to a usable
// minimum.
func NewChart(width, height int) Chart {
	return Chart{Width: max(width, minChartWidth), Height: max(height, minChartHeight)}
}

type cell struct {
	r  rune
	ch Channel
}

// grid rasterizes the profile. Later channels draw over earlier ones, so
// flow sits on top of pressure, which sits on top of temperature.
func (c Chart) grid(p *domain.AnalyzedProfile) [][]cell {
	g := make([][]cell, c.Height)
	for i := range g {
		g[i] = make([]cell, c.Width)
	}

	x := Scale([2]float64{0, p.ElapsedTime}, [2]float64{0, float64(c.Width - 1)})
	traces := [...][]domain.Segment{
		ChannelTemperature: p.Temperature,
		ChannelPressure:    p.Pressure,
		ChannelFlow:        p.Flow,
	}
	for ch, segs := range traces {
		y := Scale(Channel(ch).yRange(), [2]float64{float64(c.Height - 1), 0})
		for _, s := range segs {
			plot(g, Channel(ch),
				round(x(s.X1)), round(y(s.Y1)),
				round(x(s.X2)), round(y(s.Y2)))
		}
	}
	return g
}

func round(f float64) int { return int(math.Round(f)) }

// plot draws a straight run of cells between two grid points.
func plot(g [][]cell, ch Channel, x1, y1, x2, y2 int) {
	r := '·'
	switch {
	case y1 == y2:
		r = '─'
	case x1 == x2:
		r = '│'
	}

	dx, dy := x2-x1, y2-y1
	n := max(abs(dx), abs(dy))
	for i := 0; i <= n; i++ {
		cx, cy := x1, y1
		if n > 0 {
			cx = x1 + round(float64(dx*i)/float64(n))
			cy = y1 + round(float64(dy*i)/float64(n))
		}
		g[cy][cx] = cell{r: r, ch: ch}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Render returns the chart with a left axis for pressure and flow, a
// right axis for temperature, a time axis and a legend.
func (c Chart) Render(p *domain.AnalyzedProfile) string {
	g := c.grid(p)

	var b strings.Builder
	for row, cells := range g {
		b.WriteString(secondaryStyle.Render(c.axisLabel(row, pumpRange, "%4.0f ")))
		b.WriteString(sepStyle.Render("┤"))
		for _, cl := range cells {
			if cl.r == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(channelStyles[cl.ch].Render(string(cl.r)))
		}
		b.WriteString(sepStyle.Render("├"))
		b.WriteString(secondaryStyle.Render(c.axisLabel(row, temperatureRange, " %-4.0f")))
		b.WriteByte('\n')
	}

	b.WriteString("     " + sepStyle.Render("└"+strings.Repeat("─", c.Width)+"┘") + "\n")
	start, end := "0s", fmt.Sprintf("%.0fs", p.ElapsedTime)
	gap := max(c.Width-len(start)-len(end)+2, 1)
	b.WriteString(secondaryStyle.Render("     " + start + strings.Repeat(" ", gap) + end))
	b.WriteByte('\n')
	b.WriteString(Legend())
	return b.String()
}

// axisLabel labels the top, middle and bottom rows with the value the row
// stands for; other rows get blank padding of the same width.
func (c Chart) axisLabel(row int, rng [2]float64, format string) string {
	last := c.Height - 1
	if row != 0 && row != last && row != last/2 {
		return strings.Repeat(" ", len(fmt.Sprintf(format, 0.0)))
	}
	v := Scale([2]float64{0, float64(last)}, [2]float64{rng[1], rng[0]})(float64(row))
	return fmt.Sprintf(format, v)
}

// Legend names each channel in its colour.
func Legend() string {
	parts := []string{
		channelStyles[ChannelPressure].Render("── pressure (bar, left)"),
		channelStyles[ChannelFlow].Render("── flow (mL/s, left)"),
		channelStyles[ChannelTemperature].Render("── temperature (°C, right)"),
	}
	return "     " + strings.Join(parts, "   ")
}
