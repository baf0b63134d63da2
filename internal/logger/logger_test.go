package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelNormal, &buf)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug line written at normal level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[INF] ") || !strings.Contains(buf.String(), "shown 2") {
		t.Fatalf("missing info line: %q", buf.String())
	}

	buf.Reset()
	log.SetLevel(LevelVerbose)
	log.Debug("now visible")
	if !strings.Contains(buf.String(), "[DBG] ") {
		t.Fatalf("missing debug line: %q", buf.String())
	}

	buf.Reset()
	log.SetLevel(LevelOff)
	log.Error("nothing")
	if buf.Len() != 0 {
		t.Fatalf("expected no output when off, got %q", buf.String())
	}
}

func TestNamed(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelNormal, &buf)
	child := root.Named("engine").Named("analyze")

	child.Warn("slow preset %s", "blooming")
	if !strings.Contains(buf.String(), "[engine.analyze] slow preset blooming") {
		t.Fatalf("unexpected line: %q", buf.String())
	}

	buf.Reset()
	root.SetLevel(LevelOff)
	child.Warn("dropped")
	if buf.Len() != 0 {
		t.Fatalf("child should follow root level, got %q", buf.String())
	}
	if child.GetLevel() != LevelOff {
		t.Fatalf("expected child level off, got %v", child.GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"QUIET", LevelOff, false},
		{"", LevelNormal, false},
		{"info", LevelNormal, false},
		{"Debug", LevelVerbose, false},
		{"verbose", LevelVerbose, false},
		{"loud", LevelOff, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
