package view

import (
	"testing"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/stretchr/testify/assert"
)

func sample() []model.Project {
	return []model.Project{
		{
			ID: "1", Name: "Website relaunch", Category: "Work",
			Description: "New marketing site", Status: model.StatusInProgress,
			Priority: model.PriorityHigh,
			Subtasks: []model.Subtask{{ID: "a", Completed: true}, {ID: "b"}},
		},
		{
			ID: "2", Name: "Tax return", Category: "Personal",
			Description: "2025 filing", Status: model.StatusNotStarted,
			Priority: model.PriorityMedium,
		},
		{
			ID: "3", Name: "Garden shed", Category: "Home",
			Description: "Build a website of shelves", Status: model.StatusCompleted,
			Priority: model.PriorityLow,
			Subtasks: []model.Subtask{{ID: "a", Completed: true}},
		},
	}
}

func ids(projects []model.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestApplyNoFilter(t *testing.T) {
	got := Apply(sample(), Filter{})
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestApplyStatusFilter(t *testing.T) {
	got := Apply(sample(), Filter{Status: model.StatusNotStarted})
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestApplyPriorityFilter(t *testing.T) {
	got := Apply(sample(), Filter{Priority: model.PriorityHigh})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestApplyQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "matches name and description", query: "website", want: []string{"1", "3"}},
		{name: "matches category", query: "personal", want: []string{"2"}},
		{name: "case insensitive", query: "WEBSITE", want: []string{"1", "3"}},
		{name: "whitespace trimmed", query: "  tax  ", want: []string{"2"}},
		{name: "no match", query: "zebra", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sample(), Filter{Query: tt.query})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyHideCompleted(t *testing.T) {
	got := Apply(sample(), Filter{HideCompleted: true})
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestApplySortProgress(t *testing.T) {
	asc := Apply(sample(), Filter{SortProgress: SortAsc})
	assert.Equal(t, []string{"2", "1", "3"}, ids(asc))

	desc := Apply(sample(), Filter{SortProgress: SortDesc})
	assert.Equal(t, []string{"3", "1", "2"}, ids(desc))
}

func TestApplySortStable(t *testing.T) {
	// equal progress keeps incoming order
	projects := []model.Project{
		{ID: "1"}, {ID: "2"}, {ID: "3"},
	}
	got := Apply(projects, Filter{SortProgress: SortAsc})
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestApplyIdempotent(t *testing.T) {
	f := Filter{Status: model.StatusInProgress, Query: "web", SortProgress: SortDesc}
	once := Apply(sample(), f)
	twice := Apply(once, f)
	assert.Equal(t, once, twice)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	projects := sample()
	Apply(projects, Filter{SortProgress: SortDesc, HideCompleted: true})
	assert.Equal(t, []string{"1", "2", "3"}, ids(projects))
}
