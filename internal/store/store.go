// Package store owns the canonical in-memory collection of projects for the
// current user. Every create, update and delete is mediated against the
// remote persistence service, and local state only ever changes by applying
// a remote-confirmed row, so after any operation settles the collection
// matches the latest confirmed remote state. Failures leave the collection
// in its last-known-good state.
//
// Concurrent edits to the same project race at the remote layer and the last
// successful write wins; there is no client-side version token.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/achaendus12-spec/my-project-manager/internal/cache"
	"github.com/achaendus12-spec/my-project-manager/internal/logger"
	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/achaendus12-spec/my-project-manager/internal/ui"
)

// Remote is the persistence and object-storage boundary the store mediates
// against. Insert and update return the resulting row.
type Remote interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	InsertProject(ctx context.Context, p model.Project) (model.Project, error)
	UpdateProject(ctx context.Context, p model.Project) (model.Project, error)
	DeleteProject(ctx context.Context, id string) error
	Upload(ctx context.Context, path, filename string, data []byte) (string, error)
}

// Store is the single source of truth for the current user's projects
type Store struct {
	mu       sync.RWMutex
	remote   Remote
	cache    *cache.Cache // optional warm-start mirror
	surface  ui.Surface
	ownerID  string
	session  uint64 // bumped on every user switch; stale responses are discarded
	projects []model.Project
	now      func() time.Time
}

// New creates a store. cache may be nil; surface must not be.
func New(remote Remote, c *cache.Cache, surface ui.Surface) *Store {
	return &Store{
		remote:  remote,
		cache:   c,
		surface: surface,
		now:     time.Now,
	}
}

// Owner returns the id of the user the collection is scoped to
func (s *Store) Owner() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ownerID
}

// Projects returns a snapshot copy of the canonical collection. Readers
// (projector, scheduler) operate on the copy; the collection may move on
// underneath them.
func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Find returns the project with the given id from the canonical collection
func (s *Store) Find(id string) (model.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}

// Load fetches all projects owned by user, ordered by creation time
// descending, and replaces the collection wholesale. Fails soft: on remote
// error the collection is left as previously held (empty after a user
// switch) and the error is returned for surfacing.
func (s *Store) Load(ctx context.Context, user string) error {
	s.mu.Lock()
	if user != s.ownerID {
		s.ownerID = user
		s.projects = nil
		s.session++
	}
	sess := s.session
	s.mu.Unlock()

	if user == "" {
		return &AuthError{}
	}

	projects, err := s.remote.ListProjects(ctx)
	if err != nil {
		logger.Error("Failed to load projects", logger.F("user", user), logger.F("error", err))
		s.surface.Toast(ui.ToastError, "Failed to load projects: "+err.Error())
		return &RemoteError{Op: "load", Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != sess {
		// user changed while the request was in flight
		return nil
	}
	s.projects = projects
	s.mirrorLocked()
	logger.Info("Projects loaded", logger.F("user", user), logger.F("count", len(projects)))
	return nil
}

// WarmStart fills an empty collection from the local cache mirror. The
// remote service remains authoritative; a later Load replaces this state.
func (s *Store) WarmStart() {
	if s.cache == nil {
		return
	}
	projects, err := s.cache.LoadProjects()
	if err != nil || projects == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.projects) == 0 {
		s.projects = projects
		logger.Info("Warm start from cache", logger.F("count", len(projects)))
	}
}

// mirrorLocked writes the collection to the warm-start cache; caller holds mu
func (s *Store) mirrorLocked() {
	if s.cache == nil {
		return
	}
	if err := s.cache.SaveProjects(s.projects); err != nil {
		logger.Warn("Failed to mirror projects to cache", logger.F("error", err))
	}
}

// Draft is the caller-supplied shape for creating or editing a project
type Draft struct {
	ID          string // empty on create, target id on update
	Name        string
	Category    string
	Description string
	Deadline    string
	Priority    string
}

// validate reports the first missing required field
func (d *Draft) validate() error {
	for _, f := range []struct{ name, value string }{
		{"name", d.Name},
		{"category", d.Category},
		{"description", d.Description},
		{"deadline", d.Deadline},
		{"priority", d.Priority},
	} {
		if f.value == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// duplicateLocked checks the (name, category, deadline) triplet against the
// collection, excluding excludeID; caller holds mu
func (s *Store) duplicateLocked(d Draft, excludeID string) error {
	for _, p := range s.projects {
		if p.ID != excludeID && p.Name == d.Name && p.Category == d.Category && p.Deadline == d.Deadline {
			return &DuplicateError{Name: d.Name, Category: d.Category, Deadline: d.Deadline}
		}
	}
	return nil
}

// Create validates the draft, checks the duplicate triplet, inserts remotely
// and prepends the remote-confirmed row. The remote row is authoritative for
// id and created_at. No local mutation happens on any failure.
func (s *Store) Create(ctx context.Context, d Draft) (model.Project, error) {
	s.mu.RLock()
	owner := s.ownerID
	sess := s.session
	s.mu.RUnlock()

	if owner == "" {
		return model.Project{}, s.fail(&AuthError{})
	}
	if err := d.validate(); err != nil {
		return model.Project{}, s.fail(err)
	}

	s.mu.RLock()
	err := s.duplicateLocked(d, "")
	s.mu.RUnlock()
	if err != nil {
		return model.Project{}, s.fail(err)
	}

	draft := model.NewProject(d.Name, d.Category, d.Description, d.Deadline, d.Priority, owner)
	row, err := s.remote.InsertProject(ctx, draft)
	if err != nil {
		return model.Project{}, s.fail(&RemoteError{Op: "create", Message: err.Error()})
	}

	s.mu.Lock()
	if s.session == sess {
		s.projects = append([]model.Project{row}, s.projects...)
		s.mirrorLocked()
	}
	s.mu.Unlock()

	logger.Info("Project created", logger.F("id", row.ID), logger.F("name", row.Name))
	s.surface.Toast(ui.ToastSuccess, "Project added!")
	return row, nil
}

// Update validates the draft, checks the duplicate triplet excluding the
// patched id, writes remotely and replaces the matching local entry with the
// remote-confirmed row.
func (s *Store) Update(ctx context.Context, d Draft) (model.Project, error) {
	s.mu.RLock()
	owner := s.ownerID
	sess := s.session
	s.mu.RUnlock()

	if owner == "" {
		return model.Project{}, s.fail(&AuthError{})
	}
	if d.ID == "" {
		return model.Project{}, s.fail(&ValidationError{Field: "id"})
	}
	if err := d.validate(); err != nil {
		return model.Project{}, s.fail(err)
	}

	base, ok := s.Find(d.ID)
	if !ok {
		return model.Project{}, s.fail(&NotFoundError{ID: d.ID})
	}

	s.mu.RLock()
	err := s.duplicateLocked(d, d.ID)
	s.mu.RUnlock()
	if err != nil {
		return model.Project{}, s.fail(err)
	}

	base.Name = d.Name
	base.Category = d.Category
	base.Description = d.Description
	base.Deadline = d.Deadline
	base.Priority = d.Priority

	row, err := s.remote.UpdateProject(ctx, base)
	if err != nil {
		return model.Project{}, s.fail(&RemoteError{Op: "update", Message: err.Error()})
	}

	s.replaceRow(sess, row)
	logger.Info("Project updated", logger.F("id", row.ID))
	s.surface.Toast(ui.ToastSuccess, "Project updated!")
	return row, nil
}

// Delete asks for confirmation through the interaction channel, deletes
// remotely and removes the project from the collection. Returns false when
// the user declined.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	owner := s.ownerID
	sess := s.session
	s.mu.RUnlock()

	if owner == "" {
		return false, s.fail(&AuthError{})
	}
	if _, ok := s.Find(id); !ok {
		return false, s.fail(&NotFoundError{ID: id})
	}

	if !s.surface.Confirm("Delete this project?") {
		return false, nil
	}

	if err := s.remote.DeleteProject(ctx, id); err != nil {
		return false, s.fail(&RemoteError{Op: "delete", Message: err.Error()})
	}

	s.mu.Lock()
	if s.session == sess {
		kept := s.projects[:0:0]
		for _, p := range s.projects {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		s.projects = kept
		s.mirrorLocked()
	}
	s.mu.Unlock()

	logger.Info("Project deleted", logger.F("id", id))
	s.surface.Toast(ui.ToastSuccess, "Project deleted.")
	return true, nil
}

// replaceRow swaps the matching local entry for the remote-confirmed row,
// unless the user changed while the write was in flight
func (s *Store) replaceRow(sess uint64, row model.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != sess {
		return
	}
	for i := range s.projects {
		if s.projects[i].ID == row.ID {
			s.projects[i] = row
			break
		}
	}
	s.mirrorLocked()
}

// SetSurface swaps the interaction channel. The dashboard routes confirms
// and toasts through itself instead of plain terminal prompts.
func (s *Store) SetSurface(surface ui.Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surface = surface
}

// fail logs an error, surfaces it as a toast, and returns it unchanged
func (s *Store) fail(err error) error {
	logger.Error("Store operation failed", logger.F("error", err))
	s.surface.Toast(ui.ToastError, err.Error())
	return err
}

// sessionOf returns the current session marker
func (s *Store) sessionOf() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}
