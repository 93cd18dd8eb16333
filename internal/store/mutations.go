package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/achaendus12-spec/my-project-manager/internal/logger"
	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/achaendus12-spec/my-project-manager/internal/ui"
)

// mutate applies fn to a local snapshot of the project, sends the result as a
// full-row write, and replaces the local entry with the remote-confirmed row.
// fn returning false is a benign no-op: the current row is returned unchanged
// and nothing is sent.
func (s *Store) mutate(ctx context.Context, id, op string, fn func(p *model.Project) bool) (model.Project, error) {
	s.mu.RLock()
	owner := s.ownerID
	sess := s.session
	s.mu.RUnlock()

	if owner == "" {
		return model.Project{}, s.fail(&AuthError{})
	}

	base, ok := s.Find(id)
	if !ok {
		return model.Project{}, s.fail(&NotFoundError{ID: id})
	}

	if !fn(&base) {
		return base, nil
	}

	row, err := s.remote.UpdateProject(ctx, base)
	if err != nil {
		return model.Project{}, s.fail(&RemoteError{Op: op, Message: err.Error()})
	}

	s.replaceRow(sess, row)
	logger.Debug("Project mutated", logger.F("id", id), logger.F("op", op))
	return row, nil
}

// AdvanceStatus cycles the project's status one step forward
// (Not Started → In Progress → Completed → Not Started) and persists the new
// status remotely before reflecting it locally.
func (s *Store) AdvanceStatus(ctx context.Context, id string) (model.Project, error) {
	return s.mutate(ctx, id, "advance status", func(p *model.Project) bool {
		p.Status = model.NextStatus(p.Status)
		return true
	})
}

// SetStatus sets the project's status directly
func (s *Store) SetStatus(ctx context.Context, id, status string) (model.Project, error) {
	if !model.ValidStatus(status) {
		return model.Project{}, s.fail(&ValidationError{Field: "status"})
	}
	return s.mutate(ctx, id, "set status", func(p *model.Project) bool {
		p.Status = status
		return true
	})
}

// AddNote appends a note with trimmed text. Empty text after trimming is a
// benign no-op, not an error.
func (s *Store) AddNote(ctx context.Context, id, text string) (model.Project, error) {
	text = strings.TrimSpace(text)
	return s.mutate(ctx, id, "add note", func(p *model.Project) bool {
		if text == "" {
			return false
		}
		now := s.now()
		p.Notes = append(p.Notes, model.Note{
			ID:        model.NewEntryID(now),
			Text:      text,
			Timestamp: now,
		})
		return true
	})
}

// DeleteNote removes the note with the given id
func (s *Store) DeleteNote(ctx context.Context, id, noteID string) (model.Project, error) {
	return s.mutate(ctx, id, "delete note", func(p *model.Project) bool {
		kept := p.Notes[:0:0]
		for _, n := range p.Notes {
			if n.ID != noteID {
				kept = append(kept, n)
			}
		}
		p.Notes = kept
		return true
	})
}

// AddSubtask appends a checklist item with trimmed text. Empty text after
// trimming is a benign no-op.
func (s *Store) AddSubtask(ctx context.Context, id, text string) (model.Project, error) {
	text = strings.TrimSpace(text)
	return s.mutate(ctx, id, "add subtask", func(p *model.Project) bool {
		if text == "" {
			return false
		}
		p.Subtasks = append(p.Subtasks, model.Subtask{
			ID:   model.NewEntryID(s.now()),
			Text: text,
		})
		return true
	})
}

// ToggleSubtask flips the completed flag of the subtask with the given id
func (s *Store) ToggleSubtask(ctx context.Context, id, subtaskID string) (model.Project, error) {
	return s.mutate(ctx, id, "toggle subtask", func(p *model.Project) bool {
		subtasks := make([]model.Subtask, len(p.Subtasks))
		copy(subtasks, p.Subtasks)
		for i := range subtasks {
			if subtasks[i].ID == subtaskID {
				subtasks[i].Completed = !subtasks[i].Completed
			}
		}
		p.Subtasks = subtasks
		return true
	})
}

// DeleteSubtask removes the subtask with the given id
func (s *Store) DeleteSubtask(ctx context.Context, id, subtaskID string) (model.Project, error) {
	return s.mutate(ctx, id, "delete subtask", func(p *model.Project) bool {
		kept := p.Subtasks[:0:0]
		for _, st := range p.Subtasks {
			if st.ID != subtaskID {
				kept = append(kept, st)
			}
		}
		p.Subtasks = kept
		return true
	})
}

// RegisterAttachment uploads the file bytes to the object storage under a
// path keyed by owner, project, timestamp and filename, then appends the
// returned public URL to the project's attachments and persists the row.
func (s *Store) RegisterAttachment(ctx context.Context, id, filename string, data []byte) (model.Project, error) {
	s.mu.RLock()
	owner := s.ownerID
	s.mu.RUnlock()

	if owner == "" {
		return model.Project{}, s.fail(&AuthError{})
	}
	if _, ok := s.Find(id); !ok {
		return model.Project{}, s.fail(&NotFoundError{ID: id})
	}

	path := fmt.Sprintf("%s/%s/%d-%s", owner, id, s.now().UnixMilli(), filename)
	url, err := s.remote.Upload(ctx, path, filename, data)
	if err != nil {
		return model.Project{}, s.fail(&RemoteError{Op: "upload attachment", Message: err.Error()})
	}

	row, err := s.mutate(ctx, id, "register attachment", func(p *model.Project) bool {
		p.Attachments = append(p.Attachments, model.Attachment{URL: url, Name: filename})
		return true
	})
	if err != nil {
		return model.Project{}, err
	}

	s.surface.Toast(ui.ToastSuccess, "Attachment uploaded!")
	return row, nil
}
