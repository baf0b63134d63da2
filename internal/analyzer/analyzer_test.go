package analyzer_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/hammamikhairi/shotgraph/internal/analyzer"
	"github.com/hammamikhairi/shotgraph/internal/domain"
	"github.com/hammamikhairi/shotgraph/internal/parser"
)

func seg(x1, y1, x2, y2 float64) domain.Segment {
	return domain.Segment{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func mustSteps(t *testing.T, text string) []domain.Step {
	t.Helper()
	steps, err := parser.ParseSteps(text)
	if err != nil {
		t.Fatalf("parse steps: %v", err)
	}
	return steps
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name  string
		steps string
		want  domain.AnalyzedProfile
	}{
		{
			name: "pressure fast then smooth",
			steps: `{transition fast pump pressure pressure 4 temperature 92 seconds 10}
				{transition smooth pump pressure pressure 9 temperature 90 seconds 5}`,
			want: domain.AnalyzedProfile{
				Temperature: []domain.Segment{
					seg(0, 92, 10, 92),
					seg(10, 92, 10, 90),
					seg(10, 90, 15, 90),
				},
				Pressure: []domain.Segment{
					seg(0, 0, 0, 4),
					seg(0, 4, 10, 4),
					seg(10, 4, 15, 9),
				},
				ElapsedTime: 15,
			},
		},
		{
			name: "pressure fast holds then jumps",
			steps: `{transition fast pump pressure pressure 4 seconds 10}
				{transition fast pump pressure pressure 9 seconds 5}`,
			want: domain.AnalyzedProfile{
				Pressure: []domain.Segment{
					seg(0, 0, 0, 4),
					seg(0, 4, 10, 4),
					seg(10, 4, 10, 9),
					seg(10, 9, 15, 9),
				},
				ElapsedTime: 15,
			},
		},
		{
			name:  "pressure pump ignores flow",
			steps: `{transition fast pump pressure flow 6 pressure 3 seconds 8}`,
			want: domain.AnalyzedProfile{
				Pressure: []domain.Segment{
					seg(0, 0, 0, 3),
					seg(0, 3, 8, 3),
				},
				ElapsedTime: 8,
			},
		},
		{
			name: "flow to pressure handoff drops flow",
			steps: `{pump flow flow 2 transition fast seconds 4}
				{pump pressure pressure 6 transition fast seconds 6}`,
			want: domain.AnalyzedProfile{
				Pressure: []domain.Segment{
					seg(4, 0, 4, 6),
					seg(4, 6, 10, 6),
				},
				Flow: []domain.Segment{
					seg(0, 0, 0, 2),
					seg(0, 2, 4, 2),
					seg(4, 2, 4, 0),
				},
				ElapsedTime: 10,
			},
		},
		{
			name: "pressure to flow handoff drops pressure",
			steps: `{pump pressure pressure 9 transition fast seconds 5}
				{pump flow flow 2 transition smooth seconds 20}`,
			want: domain.AnalyzedProfile{
				Pressure: []domain.Segment{
					seg(0, 0, 0, 9),
					seg(0, 9, 5, 9),
					seg(5, 9, 5, 0),
				},
				Flow: []domain.Segment{
					seg(5, 0, 5, 2),
					seg(5, 2, 25, 2),
				},
				ElapsedTime: 25,
			},
		},
		{
			name: "flow exit corrects next flow step",
			steps: `{pump flow flow 8 transition fast exit_if 1 exit_type flow_over exit_flow_over 6 seconds 5}
				{pump flow flow 3 transition smooth seconds 10}`,
			want: domain.AnalyzedProfile{
				Flow: []domain.Segment{
					seg(0, 0, 0, 8),
					seg(0, 8, 5, 8),
					seg(5, 8, 5, 6),
					seg(5, 6, 15, 3),
				},
				ElapsedTime: 15,
			},
		},
		{
			name: "flow under exit corrects with fast transition",
			steps: `{pump flow flow 4 transition fast exit_if 1 exit_type flow_under exit_flow_under 1.5 seconds 5}
				{pump flow flow 3 transition fast seconds 10}`,
			want: domain.AnalyzedProfile{
				Flow: []domain.Segment{
					seg(0, 0, 0, 4),
					seg(0, 4, 5, 4),
					seg(5, 4, 5, 1.5),
					seg(5, 1.5, 5, 3),
					seg(5, 3, 15, 3),
				},
				ElapsedTime: 15,
			},
		},
		{
			name: "pressure exit never corrects",
			steps: `{pump flow flow 8 transition fast exit_if 1 exit_type pressure_over exit_pressure_over 6 seconds 5}
				{pump flow flow 3 transition smooth seconds 10}`,
			want: domain.AnalyzedProfile{
				Flow: []domain.Segment{
					seg(0, 0, 0, 8),
					seg(0, 8, 5, 8),
					seg(5, 8, 15, 3),
				},
				ElapsedTime: 15,
			},
		},
		{
			name: "exit disabled never corrects",
			steps: `{pump flow flow 8 transition fast exit_if 0 exit_type flow_over exit_flow_over 6 seconds 5}
				{pump flow flow 3 transition smooth seconds 10}`,
			want: domain.AnalyzedProfile{
				Flow: []domain.Segment{
					seg(0, 0, 0, 8),
					seg(0, 8, 5, 8),
					seg(5, 8, 15, 3),
				},
				ElapsedTime: 15,
			},
		},
		{
			name: "flow exit without a prior flow segment only seeds",
			steps: `{pump pressure pressure 2 transition fast exit_if 1 exit_type flow_over exit_flow_over 1.5 seconds 3}
				{pump flow flow 4 transition fast seconds 2}`,
			want: domain.AnalyzedProfile{
				Pressure: []domain.Segment{
					seg(0, 0, 0, 2),
					seg(0, 2, 3, 2),
					seg(3, 2, 3, 0),
				},
				Flow: []domain.Segment{
					seg(3, 0, 3, 4),
					seg(3, 4, 5, 4),
				},
				ElapsedTime: 5,
			},
		},
		{
			name:  "no steps",
			steps: ``,
			want:  domain.AnalyzedProfile{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := mustSteps(t, tt.steps)
			got, err := analyzer.Analyze(steps)
			if err != nil {
				t.Fatalf("analyze: %v", err)
			}
			ignoreSteps := cmpopts.IgnoreFields(domain.AnalyzedProfile{}, "Steps")
			if diff := cmp.Diff(&tt.want, got, cmpopts.EquateEmpty(), ignoreSteps); diff != "" {
				t.Fatalf("profile mismatch (-want +got):\n%s", diff)
			}
			if got.Steps != len(steps) {
				t.Fatalf("expected %d steps, got %d", len(steps), got.Steps)
			}
		})
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	steps := mustSteps(t, `{pump flow flow 8 transition fast temperature 94 exit_if 1 exit_type flow_over exit_flow_over 6 seconds 5}
		{pump pressure pressure 9 transition smooth temperature 92 seconds 4}
		{pump flow flow 2.5 transition smooth temperature 90 seconds 30}`)

	first, err := analyzer.Analyze(steps)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	second, err := analyzer.Analyze(steps)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("output differs between runs:\n%s\n%s", a, b)
	}
}

func TestAnalyzeMissingRequiredProps(t *testing.T) {
	tests := []struct {
		name    string
		steps   string
		missing string
	}{
		{"seconds", `{pump flow transition fast flow 2}`, "seconds"},
		{"transition", `{pump flow flow 2 seconds 3}`, "transition"},
		{"pump", `{transition fast flow 2 seconds 3}`, "pump"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := mustSteps(t, `{pump flow transition fast flow 1 seconds 1} `+tt.steps)
			got, err := analyzer.Analyze(steps)
			if !errors.Is(err, domain.ErrMissingRequiredProp) {
				t.Fatalf("expected ErrMissingRequiredProp, got %v", err)
			}
			if got != nil {
				t.Fatal("expected no profile on error")
			}
			if !strings.Contains(err.Error(), "step 2") || !strings.Contains(err.Error(), tt.missing) {
				t.Fatalf("error should name step 2 and %s: %v", tt.missing, err)
			}
		})
	}
}

func TestAnalyzeIgnoresUnknownProps(t *testing.T) {
	plain := mustSteps(t, `{pump flow flow 8 transition fast temperature 94 exit_if 1 exit_type flow_over exit_flow_over 6 seconds 5}
		{pump pressure pressure 9 transition smooth temperature 92 seconds 4}
		{pump flow flow 2.5 transition smooth temperature 90 seconds 30}`)
	extended := mustSteps(t, `{exit_weight 36 pump flow flow 8 transition fast temperature 94 exit_if 1 exit_type flow_over exit_flow_over 6 seconds 5 limiter_value 2}
		{pump pressure pressure 9 popup {Keep {going}} transition smooth temperature 92 seconds 4 weight_exit 0.5}
		{pump flow flow 2.5 transition smooth temperature 90 seconds 30 future_key on}`)

	want, err := analyzer.Analyze(plain)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	got, err := analyzer.Analyze(extended)
	if err != nil {
		t.Fatalf("analyze with unknown props: %v", err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("unknown props changed the traces (-want +got):\n%s", diff)
	}
}
