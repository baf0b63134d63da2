package preset

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hammamikhairi/shotgraph/internal/domain"
)

// Compile-time interface check.
var _ domain.PresetSource = (*Catalog)(nil)

// Catalog is the set of loaded presets, sorted by title. It is never
// modified after construction, so reads need no locking.
type Catalog struct {
	presets []*domain.Preset
	byName  map[string]*domain.Preset
}

func newCatalog(presets []*domain.Preset) *Catalog {
	sort.SliceStable(presets, func(i, j int) bool {
		if presets[i].Title != presets[j].Title {
			return presets[i].Title < presets[j].Title
		}
		return presets[i].Name < presets[j].Name
	})

	byName := make(map[string]*domain.Preset, len(presets))
	for _, p := range presets {
		byName[p.Name] = p
	}
	return &Catalog{presets: presets, byName: byName}
}

// Len returns the number of presets.
func (c *Catalog) Len() int { return len(c.presets) }

// List returns summaries of every preset in title order.
func (c *Catalog) List(ctx context.Context) ([]domain.PresetSummary, error) {
	out := make([]domain.PresetSummary, 0, len(c.presets))
	for _, p := range c.presets {
		out = append(out, p.Summary())
	}
	return out, nil
}

// Get returns a copy of the named preset.
func (c *Catalog) Get(ctx context.Context, name string) (*domain.Preset, error) {
	p, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPreset, name)
	}
	cp := *p
	return &cp, nil
}

// Search returns presets whose name, title, notes or author contain query,
// ignoring case. An empty query matches everything.
func (c *Catalog) Search(ctx context.Context, query string) ([]domain.PresetSummary, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []domain.PresetSummary
	for _, p := range c.presets {
		if matches(p, q) {
			out = append(out, p.Summary())
		}
	}
	return out, nil
}

func matches(p *domain.Preset, query string) bool {
	for _, field := range []string{p.Name, p.Title, p.Notes, p.Author} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
