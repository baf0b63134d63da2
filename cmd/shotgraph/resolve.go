package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/shotgraph/internal/domain"
	"github.com/hammamikhairi/shotgraph/internal/engine"
)

// resolvePreset finds a preset by list number (1-based), document name
// with or without the .tcl extension, or case-insensitive title.
func resolvePreset(ctx context.Context, eng *engine.Engine, ref string) (*domain.Preset, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty name", domain.ErrUnknownPreset)
	}

	list, err := eng.ListPresets(ctx)
	if err != nil {
		return nil, err
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(list) {
			return nil, fmt.Errorf("%w: no preset number %d (have %d)", domain.ErrUnknownPreset, n, len(list))
		}
		return eng.GetPreset(ctx, list[n-1].Name)
	}

	for _, s := range list {
		if s.Name == ref || s.Name == ref+".tcl" || strings.EqualFold(s.Title, ref) {
			return eng.GetPreset(ctx, s.Name)
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPreset, ref)
}
