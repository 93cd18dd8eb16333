// Package view derives the displayed project list from the canonical
// collection and the current filter state. The projection is pure and
// recomputed on every call; nothing is cached because both the collection
// and any filter parameter may change between reads.
package view

import (
	"sort"
	"strings"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
)

// Sort directions for the progress sort
const (
	SortNone = ""
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filter holds the presentation-layer filter state. Zero values mean "off".
type Filter struct {
	Status        string // exact match when set
	Priority      string // exact match when set
	Query         string // case-insensitive substring over name, category, description
	HideCompleted bool   // drop projects with progress >= 100
	SortProgress  string // SortAsc or SortDesc; otherwise keep incoming order
}

// Apply runs the pipeline: status → priority → query → hide-completed →
// progress sort. The incoming order (creation time descending, as loaded)
// is preserved unless a sort direction is set, and preserved between equal
// progress values even then.
func Apply(projects []model.Project, f Filter) []model.Project {
	out := make([]model.Project, 0, len(projects))
	query := strings.ToLower(strings.TrimSpace(f.Query))

	for _, p := range projects {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Priority != "" && p.Priority != f.Priority {
			continue
		}
		if query != "" && !matches(&p, query) {
			continue
		}
		if f.HideCompleted && p.Progress() >= 100 {
			continue
		}
		out = append(out, p)
	}

	switch f.SortProgress {
	case SortAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Progress() < out[j].Progress()
		})
	case SortDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Progress() > out[j].Progress()
		})
	}

	return out
}

func matches(p *model.Project, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Category), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}
