// Package preset loads profile documents into a read-only catalog of
// advanced presets.
package preset

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/hammamikhairi/shotgraph/internal/domain"
	"github.com/hammamikhairi/shotgraph/internal/logger"
	"github.com/hammamikhairi/shotgraph/internal/parser"
)

// errNotAdvanced marks a well-formed document of a profile type the
// catalog does not chart.
var errNotAdvanced = errors.New("not an advanced profile")

// Load reads every regular file at the root of fsys and returns a catalog
// of the advanced presets among them. A document that fails to read,
// parse or provide a title, notes and step list is skipped with a warning;
// it never fails the whole load.
func Load(fsys fs.FS, log *logger.Logger) *Catalog {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		log.Error("reading profile bundle: %v", err)
		return newCatalog(nil)
	}

	var presets []*domain.Preset
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		p, err := loadDocument(fsys, e.Name())
		switch {
		case errors.Is(err, errNotAdvanced):
			log.Debug("skipping %s: %v", e.Name(), err)
		case err != nil:
			log.Warn("skipping %s: %v", e.Name(), err)
		default:
			presets = append(presets, p)
		}
	}

	log.Info("loaded %d presets from %d documents", len(presets), len(entries))
	return newCatalog(presets)
}

// loadDocument parses one document into a preset named after the file.
func loadDocument(fsys fs.FS, name string) (*domain.Preset, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	profile, err := parser.ParseProfile(src)
	if err != nil {
		return nil, err
	}
	return presetOf(name, profile)
}

func presetOf(name string, profile domain.Profile) (*domain.Preset, error) {
	if !profile.IsProfileType(domain.AdvancedProfileType) {
		return nil, errNotAdvanced
	}

	p := &domain.Preset{Name: name}
	var ok bool
	if p.Title, ok = profile.Title(); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingRequiredProp, domain.CommandProfileTitle)
	}
	if p.Notes, ok = profile.Notes(); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingRequiredProp, domain.CommandProfileNotes)
	}
	if p.Data, ok = profile.AdvancedShot(); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingRequiredProp, domain.CommandAdvancedShot)
	}

	p.Author, _ = profile.Author()
	if b, ok := profile.Beverage(); ok {
		p.Beverage = b.String()
	}
	return p, nil
}
