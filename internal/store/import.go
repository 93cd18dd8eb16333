package store

import (
	"github.com/achaendus12-spec/my-project-manager/internal/logger"
	"github.com/achaendus12-spec/my-project-manager/internal/model"
)

// Import operations act on local state only; they never write to the remote
// store. A caller wishing to persist an import must follow up with per-entity
// store operations.

// ImportReplace replaces the canonical collection wholesale with the
// imported sequence
func (s *Store) ImportReplace(projects []model.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = projects
	s.mirrorLocked()
	logger.Info("Import replaced collection", logger.F("count", len(projects)))
}

// ImportMerge appends imported projects whose id does not already exist
// locally; rows with colliding ids are silently dropped, never overwritten
func (s *Store) ImportMerge(projects []model.Project) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]bool, len(s.projects))
	for _, p := range s.projects {
		existing[p.ID] = true
	}

	added := 0
	for _, p := range projects {
		if existing[p.ID] {
			continue
		}
		s.projects = append(s.projects, p)
		existing[p.ID] = true
		added++
	}
	s.mirrorLocked()
	logger.Info("Import merged collection",
		logger.F("imported", len(projects)), logger.F("added", added))
	return added
}
