// Package engine is the service facade over the preset catalog: listing,
// lookup and memoized analysis of presets into traces.
package engine

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/hammamikhairi/shotgraph/internal/analyzer"
	"github.com/hammamikhairi/shotgraph/internal/domain"
	"github.com/hammamikhairi/shotgraph/internal/logger"
	"github.com/hammamikhairi/shotgraph/internal/parser"
)

// Option configures the engine.
type Option func(*Engine)

// WithConcurrency sets how many presets AnalyzeAll analyzes at once.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// Engine answers catalog queries and turns presets into analyzed
// profiles. It depends only on interfaces and is fully testable with
// in-memory implementations.
type Engine struct {
	presets     domain.PresetSource
	store       domain.ProfileStore
	log         *logger.Logger
	concurrency int

	inflight singleflight.Group
}

// New creates an engine with the given dependencies and options.
func New(presets domain.PresetSource, store domain.ProfileStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		presets:     presets,
		store:       store,
		log:         log,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ListPresets returns all presets in catalog order.
func (e *Engine) ListPresets(ctx context.Context) ([]domain.PresetSummary, error) {
	return e.presets.List(ctx)
}

// SearchPresets returns presets matching query.
func (e *Engine) SearchPresets(ctx context.Context, query string) ([]domain.PresetSummary, error) {
	return e.presets.Search(ctx, query)
}

// GetPreset returns a full preset by name.
func (e *Engine) GetPreset(ctx context.Context, name string) (*domain.Preset, error) {
	return e.presets.Get(ctx, name)
}

// Analyze returns the traces of the named preset. Results are memoized in
// the store, and concurrent calls for the same preset share one analysis.
// The returned profile belongs to the caller.
func (e *Engine) Analyze(ctx context.Context, name string) (*domain.AnalyzedProfile, error) {
	p, err := e.presets.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("getting preset: %w", err)
	}

	if cached, err := e.store.Load(ctx, name); err == nil {
		e.log.Debug("profile cache hit: %s", name)
		return cached, nil
	}

	v, err, shared := e.inflight.Do(name, func() (any, error) {
		return e.analyze(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		e.log.Debug("shared in-flight analysis of %s", name)
	}
	return v.(*domain.AnalyzedProfile).Clone(), nil
}

func (e *Engine) analyze(ctx context.Context, p *domain.Preset) (*domain.AnalyzedProfile, error) {
	steps, err := parser.ParseSteps(p.Data)
	if err != nil {
		e.log.Warn("parsing steps of %s: %v", p.Name, err)
		return nil, fmt.Errorf("parsing steps of %s: %w", p.Name, err)
	}
	profile, err := analyzer.Analyze(steps)
	if err != nil {
		e.log.Warn("analyzing %s: %v", p.Name, err)
		return nil, fmt.Errorf("analyzing %s: %w", p.Name, err)
	}

	if err := e.store.Save(ctx, p.Name, profile); err != nil {
		e.log.Warn("caching profile %s: %v", p.Name, err)
	}
	e.log.Info("analyzed %s: %d steps, %.1fs", p.Name, profile.Steps, profile.ElapsedTime)
	return profile, nil
}

// Report is the outcome of analyzing one preset during AnalyzeAll.
type Report struct {
	Name        string  `json:"name" yaml:"name"`
	Title       string  `json:"title" yaml:"title"`
	Steps       int     `json:"steps" yaml:"steps"` // zero when analysis failed
	ElapsedTime float64 `json:"elapsed_time" yaml:"elapsed_time"`
	Err         error   `json:"-" yaml:"-"`
}

// OK reports whether the preset analyzed cleanly.
func (r Report) OK() bool { return r.Err == nil }

// AnalyzeAll analyzes every preset in parallel and returns one report per
// preset in catalog order. A preset that fails to analyze is recorded in
// its report; only cancellation of ctx fails the whole call.
func (e *Engine) AnalyzeAll(ctx context.Context) ([]Report, error) {
	list, err := e.presets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}

	reports := make([]Report, len(list))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, s := range list {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = e.report(gctx, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range reports {
		if !r.OK() {
			failed++
		}
	}
	e.log.Info("checked %d presets, %d failed", len(reports), failed)
	return reports, nil
}

func (e *Engine) report(ctx context.Context, s domain.PresetSummary) Report {
	r := Report{Name: s.Name, Title: s.Title}

	profile, err := e.Analyze(ctx, s.Name)
	if err != nil {
		r.Err = err
		return r
	}
	r.Steps = profile.Steps
	r.ElapsedTime = profile.ElapsedTime
	return r
}

// IsUnknownPreset reports whether err means the requested preset does not
// exist, as opposed to existing but failing to analyze.
func IsUnknownPreset(err error) bool {
	return errors.Is(err, domain.ErrUnknownPreset)
}
