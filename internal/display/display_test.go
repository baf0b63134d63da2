package display

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModelStatusBar(t *testing.T) {
	inputCh := make(chan string, 1)
	status := func() []StatusItem {
		return []StatusItem{{Label: "preset", Value: "Londinium"}, {Label: "cached", Value: "2"}}
	}
	m := newModel(status, inputCh, make(chan struct{}), func(string) {})

	next, _ := m.Update(tickMsg{})
	view := next.View()
	for _, want := range []string{"preset:", "Londinium", "cached:", shortPrompt()} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if got := next.(model).titleStr(); got != "shotgraph | preset: Londinium | cached: 2" {
		t.Fatalf("unexpected title %q", got)
	}
}

func shortPrompt() string { return strings.TrimSpace(promptText) }

func TestModelEnterSendsInput(t *testing.T) {
	inputCh := make(chan string, 1)
	var echoed string
	m := newModel(nil, inputCh, make(chan struct{}), func(s string) { echoed = s })

	var tm tea.Model = m
	for _, r := range "list" {
		tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	tm, cmd := tm.Update(tea.KeyMsg{Type: tea.KeyEnter})

	select {
	case got := <-inputCh:
		if got != "list" {
			t.Fatalf("expected %q, got %q", "list", got)
		}
	default:
		t.Fatal("no input sent")
	}
	if cmd == nil {
		t.Fatal("expected an echo command")
	}
	cmd()
	if echoed != "list" {
		t.Fatalf("expected echo of %q, got %q", "list", echoed)
	}
	if v := tm.(model).input.Value(); v != "" {
		t.Fatalf("input should be reset, got %q", v)
	}
}

func TestModelEmptyStatusHidesBar(t *testing.T) {
	m := newModel(func() []StatusItem { return nil }, make(chan string, 1), make(chan struct{}), func(string) {})
	next, _ := m.Update(tickMsg{})
	if strings.Contains(next.View(), "│") {
		t.Fatalf("bar should be hidden:\n%s", next.View())
	}
}

func TestCenterLines(t *testing.T) {
	got := centerLines("ab\nabcd\n", 10)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "   ") {
			t.Fatalf("line %q not padded", l)
		}
	}
	if got := centerLines("abcd\n", 2); strings.HasPrefix(got, " ") {
		t.Fatalf("art wider than the terminal should not be padded, got %q", got)
	}
	if centerLines("\n", 10) != "" {
		t.Fatal("empty art should render nothing")
	}
	if RenderBanner() == "" {
		t.Fatal("banner is empty")
	}
}
