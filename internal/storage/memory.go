// Package storage provides the in-memory memo of analyzed profiles.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/hammamikhairi/shotgraph/internal/domain"
	"github.com/hammamikhairi/shotgraph/internal/logger"
)

// Compile-time interface check.
var _ domain.ProfileStore = (*MemoryStore)(nil)

// MemoryStore keeps analyzed profiles keyed by preset name. Profiles are
// copied on the way in and on the way out, so callers never share one.
// Safe for concurrent access.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*domain.AnalyzedProfile
	log      *logger.Logger
}

// NewMemoryStore creates an empty in-memory profile store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*domain.AnalyzedProfile),
		log:      log,
	}
}

// Save stores a profile under name. Overwrites if it already exists.
func (s *MemoryStore) Save(ctx context.Context, name string, profile *domain.AnalyzedProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving profile %s (elapsed=%.1fs, segments=%d/%d/%d)", name, profile.ElapsedTime,
		len(profile.Temperature), len(profile.Pressure), len(profile.Flow))
	s.profiles[name] = profile.Clone()
	return nil
}

// Load returns a copy of the profile stored under name.
func (s *MemoryStore) Load(ctx context.Context, name string) (*domain.AnalyzedProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[name]
	if !ok {
		s.log.Debug("profile not cached: %s", name)
		return nil, domain.ErrNotFound
	}
	return p.Clone(), nil
}

// Delete removes the profile stored under name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[name]; !ok {
		return domain.ErrNotFound
	}
	delete(s.profiles, name)
	s.log.Debug("deleted profile %s", name)
	return nil
}

// Names returns the stored preset names in sorted order.
func (s *MemoryStore) Names(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of stored profiles.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}
