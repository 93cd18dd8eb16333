package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSONRoundTrip(t *testing.T) {
	projects := []model.Project{
		{
			ID: "p1", Name: "Site", Category: "Work", Description: "Relaunch",
			Deadline: "2026-06-01", Priority: model.PriorityHigh, Status: model.StatusInProgress,
			Notes:    []model.Note{{ID: "n1", Text: "kickoff done"}},
			Subtasks: []model.Subtask{{ID: "s1", Text: "copy", Completed: true}},
		},
	}

	data, err := ToJSON(projects)
	require.NoError(t, err)

	var back []model.Project
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, projects[0].ID, back[0].ID)
	assert.Equal(t, projects[0].Notes, back[0].Notes)
	assert.Equal(t, projects[0].Subtasks, back[0].Subtasks)
}

func TestToCSV(t *testing.T) {
	projects := []model.Project{
		{
			ID: "p1", Name: "Site", Category: "Work",
			Description: `Relaunch with "bold" copy`, Deadline: "2026-06-01",
			Priority: model.PriorityHigh, Status: model.StatusInProgress,
			Subtasks: []model.Subtask{{ID: "s1", Completed: true}, {ID: "s2"}},
		},
	}

	lines := strings.Split(strings.TrimRight(string(ToCSV(projects)), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, CSVHeader, lines[0])
	assert.Equal(t, `p1,Site,Work,"Relaunch with ""bold"" copy",2026-06-01,High,In Progress,50`, lines[1])
}

func TestToCSVEmpty(t *testing.T) {
	lines := strings.Split(strings.TrimRight(string(ToCSV(nil)), "\n"), "\n")
	assert.Equal(t, []string{CSVHeader}, lines)
}

func TestParseValid(t *testing.T) {
	data := []byte(`[
		{"id": "p1", "name": "Site", "priority": "High"},
		{"id": 42, "name": "Legacy"}
	]`)

	projects, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "p1", projects[0].ID)

	// numeric legacy id coerced to string
	assert.Equal(t, "42", projects[1].ID)
}

func TestParseStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not an array", data: `{"id": "p1"}`},
		{name: "not json", data: `hello`},
		{name: "missing id", data: `[{"name": "Site"}]`},
		{name: "null id", data: `[{"id": null, "name": "Site"}]`},
		{name: "missing name", data: `[{"id": "p1"}]`},
		{name: "non-string name", data: `[{"id": "p1", "name": 7}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			var serr *StructuralError
			require.ErrorAs(t, err, &serr)
		})
	}
}

func TestParseEmptyArray(t *testing.T) {
	projects, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, projects)
}
