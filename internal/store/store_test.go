package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/achaendus12-spec/my-project-manager/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRemote is an in-memory Remote that assigns ids on insert
type fakeRemote struct {
	rows    []model.Project
	nextID  int
	listErr error
	failAll bool

	// onUpdate runs before an update is applied, for interleaving tests
	onUpdate func()
}

func (f *fakeRemote) ListProjects(ctx context.Context) ([]model.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Project, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeRemote) InsertProject(ctx context.Context, p model.Project) (model.Project, error) {
	if f.failAll {
		return model.Project{}, errors.New("service unavailable")
	}
	f.nextID++
	p.ID = fmt.Sprintf("id-%d", f.nextID)
	f.rows = append([]model.Project{p}, f.rows...)
	return p, nil
}

func (f *fakeRemote) UpdateProject(ctx context.Context, p model.Project) (model.Project, error) {
	if f.onUpdate != nil {
		f.onUpdate()
	}
	if f.failAll {
		return model.Project{}, errors.New("service unavailable")
	}
	for i := range f.rows {
		if f.rows[i].ID == p.ID {
			f.rows[i] = p
			return p, nil
		}
	}
	return model.Project{}, errors.New("no such row")
}

func (f *fakeRemote) DeleteProject(ctx context.Context, id string) error {
	if f.failAll {
		return errors.New("service unavailable")
	}
	kept := f.rows[:0:0]
	for _, r := range f.rows {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeRemote) Upload(ctx context.Context, path, filename string, data []byte) (string, error) {
	if f.failAll {
		return "", errors.New("service unavailable")
	}
	return "https://files.example/" + path, nil
}

func newTestStore(t *testing.T) (*Store, *fakeRemote, *ui.Scripted) {
	t.Helper()
	remote := &fakeRemote{}
	surface := &ui.Scripted{ConfirmAnswer: true}
	st := New(remote, nil, surface)
	require.NoError(t, st.Load(context.Background(), "user-1"))
	return st, remote, surface
}

func draft(name string) Draft {
	return Draft{
		Name:        name,
		Category:    "Work",
		Description: "desc",
		Deadline:    "2026-06-01",
		Priority:    model.PriorityMedium,
	}
}

func TestLoadReplacesCollection(t *testing.T) {
	remote := &fakeRemote{rows: []model.Project{{ID: "a"}, {ID: "b"}}}
	st := New(remote, nil, &ui.Scripted{})

	require.NoError(t, st.Load(context.Background(), "user-1"))
	assert.Equal(t, "user-1", st.Owner())
	assert.Len(t, st.Projects(), 2)
}

func TestLoadFailsSoft(t *testing.T) {
	st, remote, surface := newTestStore(t)
	_, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)

	remote.listErr = errors.New("connection refused")
	err = st.Load(context.Background(), "user-1")

	var rerr *RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Len(t, st.Projects(), 1, "collection keeps last-known-good state")
	assert.NotEmpty(t, surface.Toasts)
}

func TestLoadWithoutUser(t *testing.T) {
	st := New(&fakeRemote{}, nil, &ui.Scripted{})
	var aerr *AuthError
	require.ErrorAs(t, st.Load(context.Background(), ""), &aerr)
}

func TestCreateValidationOrder(t *testing.T) {
	st, _, _ := newTestStore(t)
	tests := []struct {
		field string
		d     Draft
	}{
		{"name", Draft{}},
		{"category", Draft{Name: "x"}},
		{"description", Draft{Name: "x", Category: "y"}},
		{"deadline", Draft{Name: "x", Category: "y", Description: "z"}},
		{"priority", Draft{Name: "x", Category: "y", Description: "z", Deadline: "2026-01-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			_, err := st.Create(context.Background(), tt.d)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
	assert.Empty(t, st.Projects(), "no mutation on any failure")
}

func TestCreatePrependsRemoteRow(t *testing.T) {
	st, _, surface := newTestStore(t)

	first, err := st.Create(context.Background(), draft("First"))
	require.NoError(t, err)
	assert.Equal(t, "id-1", first.ID, "remote assigns the id")

	second, err := st.Create(context.Background(), draft("Second"))
	require.NoError(t, err)

	projects := st.Projects()
	require.Len(t, projects, 2)
	assert.Equal(t, second.ID, projects[0].ID, "newest first")
	assert.Contains(t, surface.Toasts[len(surface.Toasts)-1], "Project added")
}

func TestCreateDuplicateTriplet(t *testing.T) {
	st, _, _ := newTestStore(t)
	_, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)

	// identical triplet is rejected
	_, err = st.Create(context.Background(), draft("Site"))
	var derr *DuplicateError
	require.ErrorAs(t, err, &derr)

	// changing any component of the triplet is fine
	d := draft("Site")
	d.Deadline = "2026-07-01"
	_, err = st.Create(context.Background(), d)
	assert.NoError(t, err)
}

func TestCreateRemoteFailure(t *testing.T) {
	st, remote, _ := newTestStore(t)
	remote.failAll = true

	_, err := st.Create(context.Background(), draft("Site"))
	var rerr *RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Empty(t, st.Projects())
}

func TestUpdateExcludesSelfFromDuplicateCheck(t *testing.T) {
	st, _, _ := newTestStore(t)
	row, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)

	// re-saving the same triplet under its own id is not a duplicate
	d := draft("Site")
	d.ID = row.ID
	updated, err := st.Update(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, row.ID, updated.ID)
}

func TestUpdateDuplicateAgainstOther(t *testing.T) {
	st, _, _ := newTestStore(t)
	_, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)
	other, err := st.Create(context.Background(), draft("Other"))
	require.NoError(t, err)

	d := draft("Site")
	d.ID = other.ID
	_, err = st.Update(context.Background(), d)
	var derr *DuplicateError
	require.ErrorAs(t, err, &derr)
}

func TestUpdateNotFound(t *testing.T) {
	st, _, _ := newTestStore(t)
	d := draft("Site")
	d.ID = "missing"
	_, err := st.Update(context.Background(), d)
	var nerr *NotFoundError
	require.ErrorAs(t, err, &nerr)
}

func TestDeleteDeclined(t *testing.T) {
	st, remote, surface := newTestStore(t)
	row, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)

	surface.ConfirmAnswer = false
	deleted, err := st.Delete(context.Background(), row.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, st.Projects(), 1)
	assert.Len(t, remote.rows, 1, "nothing sent to the remote store")
}

func TestDeleteConfirmed(t *testing.T) {
	st, remote, _ := newTestStore(t)
	row, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)

	deleted, err := st.Delete(context.Background(), row.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Empty(t, st.Projects())
	assert.Empty(t, remote.rows)
}

func TestAdvanceStatusCycle(t *testing.T) {
	st, _, _ := newTestStore(t)
	row, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotStarted, row.Status)

	ctx := context.Background()
	row, err = st.AdvanceStatus(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, row.Status)

	row, err = st.AdvanceStatus(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, row.Status)

	row, err = st.AdvanceStatus(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusNotStarted, row.Status, "three steps return to the origin")
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	st, _, _ := newTestStore(t)
	row, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)

	_, err = st.SetStatus(context.Background(), row.ID, "Paused")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestAddNote(t *testing.T) {
	st, _, _ := newTestStore(t)
	row, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)

	row, err = st.AddNote(context.Background(), row.ID, "  kickoff done  ")
	require.NoError(t, err)
	require.Len(t, row.Notes, 1)
	assert.Equal(t, "kickoff done", row.Notes[0].Text)
	assert.NotEmpty(t, row.Notes[0].ID)
}

func TestAddNoteEmptyIsNoOp(t *testing.T) {
	st, remote, _ := newTestStore(t)
	row, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)

	remote.failAll = true // would fail if anything were sent
	row, err = st.AddNote(context.Background(), row.ID, "   ")
	require.NoError(t, err)
	assert.Empty(t, row.Notes)
}

func TestDeleteNote(t *testing.T) {
	st, _, _ := newTestStore(t)
	row, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)
	row, err = st.AddNote(context.Background(), row.ID, "keep")
	require.NoError(t, err)
	row, err = st.AddNote(context.Background(), row.ID, "drop")
	require.NoError(t, err)

	row, err = st.DeleteNote(context.Background(), row.ID, row.Notes[1].ID)
	require.NoError(t, err)
	require.Len(t, row.Notes, 1)
	assert.Equal(t, "keep", row.Notes[0].Text)
}

func TestSubtaskLifecycle(t *testing.T) {
	st, _, _ := newTestStore(t)
	ctx := context.Background()

	row, err := st.Create(ctx, draft("Site"))
	require.NoError(t, err)
	assert.Equal(t, 0, row.Progress())

	row, err = st.AddSubtask(ctx, row.ID, "copy")
	require.NoError(t, err)
	row, err = st.AddSubtask(ctx, row.ID, "design")
	require.NoError(t, err)
	require.Len(t, row.Subtasks, 2)
	assert.Equal(t, 0, row.Progress())

	row, err = st.ToggleSubtask(ctx, row.ID, row.Subtasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 50, row.Progress())

	row, err = st.ToggleSubtask(ctx, row.ID, row.Subtasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, row.Progress(), "toggle is reversible")

	row, err = st.DeleteSubtask(ctx, row.ID, row.Subtasks[1].ID)
	require.NoError(t, err)
	require.Len(t, row.Subtasks, 1)
	assert.Equal(t, "copy", row.Subtasks[0].Text)
}

func TestRegisterAttachment(t *testing.T) {
	st, _, _ := newTestStore(t)
	row, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)

	row, err = st.RegisterAttachment(context.Background(), row.ID, "mockups.pdf", []byte("pdf"))
	require.NoError(t, err)
	require.Len(t, row.Attachments, 1)
	assert.Equal(t, "mockups.pdf", row.Attachments[0].Name)
	assert.Contains(t, row.Attachments[0].URL, "user-1/"+row.ID+"/")
}

func TestImportReplace(t *testing.T) {
	st, _, _ := newTestStore(t)
	_, err := st.Create(context.Background(), draft("Old"))
	require.NoError(t, err)

	st.ImportReplace([]model.Project{{ID: "x", Name: "New"}})
	projects := st.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, "x", projects[0].ID)
}

func TestImportMergeKeepsExistingOnCollision(t *testing.T) {
	st, _, _ := newTestStore(t)
	st.ImportReplace([]model.Project{{ID: "2", Name: "Local two"}})

	added := st.ImportMerge([]model.Project{
		{ID: "1", Name: "One"},
		{ID: "2", Name: "Imported two"},
		{ID: "3", Name: "Three"},
	})
	assert.Equal(t, 2, added)

	byID := map[string]model.Project{}
	for _, p := range st.Projects() {
		byID[p.ID] = p
	}
	require.Len(t, byID, 3)
	assert.Equal(t, "Local two", byID["2"].Name, "existing row wins the id conflict")
}

func TestUserSwitchDiscardsInFlightWrite(t *testing.T) {
	st, remote, _ := newTestStore(t)
	row, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)

	// a user switch lands while the status write is in flight
	remote.onUpdate = func() {
		remote.onUpdate = nil
		require.NoError(t, st.Load(context.Background(), "user-2"))
	}
	_, err = st.AdvanceStatus(context.Background(), row.ID)
	require.NoError(t, err)

	assert.Equal(t, "user-2", st.Owner())
	for _, p := range st.Projects() {
		assert.NotEqual(t, model.StatusInProgress, p.Status,
			"stale response must not reach the new user's collection")
	}
}

func TestProjectsReturnsSnapshot(t *testing.T) {
	st, _, _ := newTestStore(t)
	_, err := st.Create(context.Background(), draft("Site"))
	require.NoError(t, err)

	snapshot := st.Projects()
	snapshot[0].Name = "mutated"

	fresh := st.Projects()
	assert.Equal(t, "Site", fresh[0].Name)
}
