package cache

import (
	"path/filepath"
	"testing"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestGetMissingKey(t *testing.T) {
	c := testCache(t)
	_, err := c.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutOverwrites(t *testing.T) {
	c := testCache(t)
	require.NoError(t, c.Put("k", "one"))
	require.NoError(t, c.Put("k", "two"))

	v, err := c.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "two", v)
}

func TestProjectsMirror(t *testing.T) {
	c := testCache(t)

	// absent mirror is nil, not an error
	projects, err := c.LoadProjects()
	require.NoError(t, err)
	assert.Nil(t, projects)

	seed := []model.Project{
		{ID: "p1", Name: "Site", Subtasks: []model.Subtask{{ID: "s1", Completed: true}}},
		{ID: "p2", Name: "Taxes"},
	}
	require.NoError(t, c.SaveProjects(seed))

	back, err := c.LoadProjects()
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, "p1", back[0].ID)
	assert.True(t, back[0].Subtasks[0].Completed)
}

func TestNotificationState(t *testing.T) {
	c := testCache(t)

	shown, err := c.LoadShown()
	require.NoError(t, err)
	assert.Empty(t, shown)

	require.NoError(t, c.SaveShown(map[string]bool{"p1": true}))
	require.NoError(t, c.SaveLastReset("2026-03-15"))

	shown, err = c.LoadShown()
	require.NoError(t, err)
	assert.True(t, shown["p1"])

	last, err := c.LoadLastReset()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", last)
}

func TestTheme(t *testing.T) {
	c := testCache(t)

	theme, err := c.LoadTheme()
	require.NoError(t, err)
	assert.Empty(t, theme)

	require.NoError(t, c.SaveTheme("dark"))
	theme, err = c.LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}
