package export

import (
	"context"
	"testing"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/achaendus12-spec/my-project-manager/internal/store"
	"github.com/achaendus12-spec/my-project-manager/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRemote satisfies store.Remote; imports never touch it
type stubRemote struct{}

func (stubRemote) ListProjects(context.Context) ([]model.Project, error) { return nil, nil }
func (stubRemote) InsertProject(_ context.Context, p model.Project) (model.Project, error) {
	return p, nil
}
func (stubRemote) UpdateProject(_ context.Context, p model.Project) (model.Project, error) {
	return p, nil
}
func (stubRemote) DeleteProject(context.Context, string) error { return nil }
func (stubRemote) Upload(context.Context, string, string, []byte) (string, error) {
	return "", nil
}

func importStore(t *testing.T, surface ui.Surface, seed ...model.Project) *store.Store {
	t.Helper()
	st := store.New(stubRemote{}, nil, surface)
	require.NoError(t, st.Load(context.Background(), "user-1"))
	if len(seed) > 0 {
		st.ImportReplace(seed)
	}
	return st
}

func TestImportFileReplace(t *testing.T) {
	surface := &ui.Scripted{ImportAnswer: ui.ImportReplace}
	st := importStore(t, surface, model.Project{ID: "old", Name: "Old"})

	changed, err := ImportFile([]byte(`[{"id": "new", "name": "New"}]`), st, surface)
	require.NoError(t, err)
	assert.True(t, changed)

	projects := st.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, "new", projects[0].ID)
}

func TestImportFileMerge(t *testing.T) {
	surface := &ui.Scripted{ImportAnswer: ui.ImportMerge}
	st := importStore(t, surface, model.Project{ID: "2", Name: "Local two"})

	data := []byte(`[
		{"id": "1", "name": "One"},
		{"id": "2", "name": "Imported two"},
		{"id": "3", "name": "Three"}
	]`)
	changed, err := ImportFile(data, st, surface)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, st.Projects(), 3)
}

func TestImportFileCancel(t *testing.T) {
	surface := &ui.Scripted{ImportAnswer: ui.ImportCancel}
	st := importStore(t, surface, model.Project{ID: "old", Name: "Old"})

	changed, err := ImportFile([]byte(`[{"id": "new", "name": "New"}]`), st, surface)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "old", st.Projects()[0].ID)
}

func TestImportFileStructuralFailure(t *testing.T) {
	surface := &ui.Scripted{ImportAnswer: ui.ImportReplace}
	st := importStore(t, surface, model.Project{ID: "old", Name: "Old"})

	changed, err := ImportFile([]byte(`[{"name": "no id"}]`), st, surface)
	require.Error(t, err)
	assert.False(t, changed)
	assert.Len(t, st.Projects(), 1, "nothing applied on a malformed document")
}
