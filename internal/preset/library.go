package preset

import (
	"context"
	"io/fs"
	"sync"

	"github.com/hammamikhairi/shotgraph/internal/domain"
	"github.com/hammamikhairi/shotgraph/internal/logger"
)

// Library owns the process-wide catalog. The catalog is built on the
// first call to Catalog; concurrent first callers wait for that single
// build and share its result.
type Library struct {
	fsys fs.FS
	log  *logger.Logger

	once    sync.Once
	catalog *Catalog
}

// NewLibrary creates a library over fsys. Nothing is read until the
// catalog is first requested.
func NewLibrary(fsys fs.FS, log *logger.Logger) *Library {
	return &Library{fsys: fsys, log: log}
}

// Catalog returns the catalog, building it on first use.
func (l *Library) Catalog() *Catalog {
	l.once.Do(func() {
		l.catalog = Load(l.fsys, l.log)
	})
	return l.catalog
}

// List implements domain.PresetSource.
func (l *Library) List(ctx context.Context) ([]domain.PresetSummary, error) {
	return l.Catalog().List(ctx)
}

// Get implements domain.PresetSource.
func (l *Library) Get(ctx context.Context, name string) (*domain.Preset, error) {
	return l.Catalog().Get(ctx, name)
}

// Search implements domain.PresetSource.
func (l *Library) Search(ctx context.Context, query string) ([]domain.PresetSummary, error) {
	return l.Catalog().Search(ctx, query)
}
