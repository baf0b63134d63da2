package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/shotgraph/internal/display"
	"github.com/hammamikhairi/shotgraph/internal/domain"
	"github.com/hammamikhairi/shotgraph/internal/engine"
	"github.com/hammamikhairi/shotgraph/internal/logger"
	"github.com/hammamikhairi/shotgraph/internal/preset"
	"github.com/hammamikhairi/shotgraph/internal/prompt"
	"github.com/hammamikhairi/shotgraph/internal/storage"
)

func setupEngine(t *testing.T) (*engine.Engine, *storage.MemoryStore) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	store := storage.NewMemoryStore(log)
	return engine.New(preset.NewLibrary(preset.Bundled(), log), store, log), store
}

func TestResolvePreset(t *testing.T) {
	eng, _ := setupEngine(t)
	ctx := context.Background()

	tests := []struct {
		ref  string
		want string
	}{
		{"1", "blooming_espresso.tcl"},
		{"3", "londinium.tcl"},
		{"londinium.tcl", "londinium.tcl"},
		{"londinium", "londinium.tcl"},
		{"pour OVER", "pourover_filter.tcl"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			p, err := resolvePreset(ctx, eng, tt.ref)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if p.Name != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, p.Name)
			}
		})
	}

	for _, ref := range []string{"", "0", "6", "espresso-machine"} {
		if _, err := resolvePreset(ctx, eng, ref); !errors.Is(err, domain.ErrUnknownPreset) {
			t.Fatalf("%q: expected ErrUnknownPreset, got %v", ref, err)
		}
	}
}

// recorder captures browser output as plain lines.
type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) add(s string) {
	r.mu.Lock()
	r.lines = append(r.lines, s)
	r.mu.Unlock()
}

func (r *recorder) Println(a ...interface{}) {
	var parts []string
	for _, v := range a {
		parts = append(parts, v.(string))
	}
	r.add(strings.Join(parts, " "))
}
func (r *recorder) PrintInfo(text string)    { r.add(text) }
func (r *recorder) PrintHeading(text string) { r.add(text) }
func (r *recorder) PrintHint(text string)    { r.add(text) }
func (r *recorder) PrintUrgent(text string)  { r.add(text) }

func (r *recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.lines, "\n")
}

func newBrowser(t *testing.T) (*browser, *recorder, *storage.MemoryStore) {
	t.Helper()
	eng, store := setupEngine(t)
	log := logger.New(logger.LevelOff, nil)
	rec := &recorder{}
	return &browser{
		engine: eng,
		parser: prompt.NewKeywordParser(log),
		log:    log,
		out:    rec,
		chart:  display.NewChart(40, 8),
		cached: store.Len,
	}, rec, store
}

func TestBrowserSession(t *testing.T) {
	b, rec, store := newBrowser(t)
	input := make(chan string, 16)
	for _, line := range []string{"help", "3", "search tea", "1", "pick Pour over", "show", "about", "what", "quit", "list"} {
		input <- line
	}

	done := make(chan struct{})
	go func() {
		b.run(context.Background(), input)
		close(done)
	}()
	<-done

	out := rec.String()
	for _, want := range []string{
		"Presets:",
		"Commands:",
		"Londinium",
		`Matches for "tea":`,
		"Tea portafilter",
		"Pour over",
		"Hello Decent Community!",
		`Didn't catch "what"`,
		"Bye.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if len(input) != 1 {
		t.Fatalf("browser should stop at quit, %d lines left", len(input))
	}

	// "1" after the search picks from the search results, then "pick" replaces it.
	items := b.status()
	if items[0].Value != "Pour over" {
		t.Fatalf("expected Pour over selected, got %q", items[0].Value)
	}
	if store.Len() != 3 {
		t.Fatalf("expected 3 charted presets, got %d", store.Len())
	}
	if items[1].Value != "3" {
		t.Fatalf("status should report 3 charted, got %q", items[1].Value)
	}
}

func TestBrowserSelectionErrors(t *testing.T) {
	b, rec, _ := newBrowser(t)
	ctx := context.Background()

	b.handleIntent(ctx, &domain.Intent{Type: domain.IntentShowPreset})
	b.showPresets(ctx)
	b.handleIntent(ctx, &domain.Intent{Type: domain.IntentSelectPreset, Payload: "9"})
	b.handleIntent(ctx, &domain.Intent{Type: domain.IntentSelectPreset, Payload: "nope"})

	out := rec.String()
	for _, want := range []string{"Pick a preset first.", "No preset number 9. Pick 1 to 5.", `No preset called "nope".`} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if b.status()[0].Value != "none" {
		t.Fatal("nothing should be selected")
	}
}

// execute runs the root command with fresh flag state and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{"--log-file", "stderr", "--quiet"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"Blooming espresso", "Tea portafilter", "5."} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "list", "--search", "lever")
	if err != nil {
		t.Fatalf("list --search: %v", err)
	}
	if !strings.Contains(out, "Londinium") || strings.Contains(out, "Tea portafilter") {
		t.Fatalf("unexpected search output:\n%s", out)
	}
}

func TestShowCommand(t *testing.T) {
	out, err := execute(t, "show", "londinium", "--format", "json")
	if err != nil {
		t.Fatalf("show json: %v", err)
	}
	var shown shownPreset
	if err := json.Unmarshal([]byte(out), &shown); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if shown.Preset.Title != "Londinium" || shown.Profile.ElapsedTime != 79 {
		t.Fatalf("unexpected output: %+v", shown.Preset)
	}

	out, err = execute(t, "show", "3", "--format", "yaml")
	if err != nil {
		t.Fatalf("show yaml: %v", err)
	}
	var doc map[string]map[string]any
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode yaml: %v\n%s", err, out)
	}
	if doc["preset"]["title"] != "Londinium" {
		t.Fatalf("unexpected yaml:\n%s", out)
	}

	out, err = execute(t, "show", "Pour over", "--width", "40", "--height", "8")
	if err != nil {
		t.Fatalf("show text: %v", err)
	}
	if !strings.Contains(out, "Pour over") || !strings.Contains(out, "95 seconds") {
		t.Fatalf("unexpected text output:\n%s", out)
	}

	if _, err := execute(t, "show", "londinium", "--format", "xml"); err == nil {
		t.Fatal("expected unknown format error")
	}
	if _, err := execute(t, "show", "missing"); !errors.Is(err, domain.ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check")
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "5 presets, 0 failed") {
		t.Fatalf("unexpected report:\n%s", out)
	}

	dir := t.TempDir()
	broken := []byte("profile_title {Broken}\nprofile_notes {}\nsettings_profile_type settings_2c\nadvanced_shot {{seconds 10}}\n")
	if err := os.WriteFile(filepath.Join(dir, "broken.tcl"), broken, 0o644); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "--profiles-dir", dir, "check")
	if err == nil {
		t.Fatalf("expected failure, got report:\n%s", out)
	}
	if !strings.Contains(out, "1 presets, 1 failed") || !strings.Contains(out, "FAIL") {
		t.Fatalf("unexpected report:\n%s", out)
	}

	if _, err := execute(t, "--profiles-dir", filepath.Join(dir, "missing"), "check"); err == nil {
		t.Fatal("expected missing profiles dir error")
	}
}

func TestAboutCommand(t *testing.T) {
	out, err := execute(t, "about")
	if err != nil {
		t.Fatalf("about: %v", err)
	}
	if !strings.Contains(out, "Hello Decent Community!") {
		t.Fatalf("unexpected about page:\n%s", out)
	}
}
