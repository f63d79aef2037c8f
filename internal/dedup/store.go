// Package dedup tracks which lead identities have already been captured. Two
// scopes run side by side: the global scope covers every artifact in the
// niche's corpus, the local scope covers the current task run (seeded from
// the task's own artifact). A lead must be new to both.
package dedup

import (
	"log/slog"

	"github.com/softleads/yp-lead-scraper/internal/export"
	"github.com/softleads/yp-lead-scraper/internal/models"
	"github.com/softleads/yp-lead-scraper/internal/niche"
)

type Store struct {
	global map[string]struct{}
	local  map[string]struct{}
	logger *slog.Logger
}

func NewStore() *Store {
	return &Store{
		global: make(map[string]struct{}),
		local:  make(map[string]struct{}),
		logger: slog.Default().With("component", "dedup"),
	}
}

// LoadGlobal scans every existing artifact for the niche and collects their
// identities. Unreadable artifacts contribute nothing; a partial scope only
// means a few more duplicates slip through to the local check.
func (s *Store) LoadGlobal(sink *export.Sink, n *niche.Niche, baseDir string) {
	paths, err := sink.ListArtifacts(n, baseDir)
	if err != nil {
		s.logger.Warn("could not list artifacts for dedup scope", "error", err)
		return
	}

	for _, path := range paths {
		leads, err := sink.Load(path)
		if err != nil {
			s.logger.Warn("skipping unreadable artifact in dedup scope", "path", path, "error", err)
			continue
		}
		for _, lead := range leads {
			s.global[lead.ID] = struct{}{}
		}
	}

	s.logger.Info("loaded existing identities for deduplication", "count", len(s.global))
}

// SeedLocal registers the task's own pre-existing leads in the local scope.
func (s *Store) SeedLocal(leads []*models.Lead) {
	for _, lead := range leads {
		s.local[lead.ID] = struct{}{}
	}
}

// Accept reports whether the identity is new to both scopes, and registers it
// in the local scope immediately so a second occurrence on the same page is
// caught.
func (s *Store) Accept(id string) bool {
	if _, dup := s.global[id]; dup {
		return false
	}
	if _, dup := s.local[id]; dup {
		return false
	}
	s.local[id] = struct{}{}
	return true
}
