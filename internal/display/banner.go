package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// RenderBanner returns the shotgraph art centred for the current terminal
// width. The art is shown at its native size.
func RenderBanner() string {
	return centerLines(bannerRaw, TermWidth())
}

// centerLines pads each line of raw so the block sits in the middle of
// width columns.
func centerLines(raw string, width int) string {
	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return ""
	}

	maxW := 0
	for _, l := range lines {
		maxW = max(maxW, len(l))
	}
	indent := strings.Repeat(" ", max(width-maxW, 0)/2)

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(indent)
		b.WriteString(BannerStyle.Render(l))
		b.WriteByte('\n')
	}
	return b.String()
}

// TermWidth returns the current terminal column count, or 80 when stdout
// is not a terminal. The browser also uses it to keep charts from
// wrapping on narrow terminals.
func TermWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
