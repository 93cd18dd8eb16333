package notify

import (
	"testing"
	"time"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldReset(t *testing.T) {
	assert.True(t, ShouldReset("", "2026-03-15"))
	assert.True(t, ShouldReset("2026-03-14", "2026-03-15"))
	assert.False(t, ShouldReset("2026-03-15", "2026-03-15"))
}

func TestCheckClassification(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	projects := []model.Project{
		{ID: "overdue", Name: "Late", Deadline: "2026-03-13"},
		{ID: "today", Name: "Today", Deadline: "2026-03-15"},
		{ID: "tomorrow", Name: "Tomorrow", Deadline: "2026-03-16"},
		{ID: "later", Name: "Later", Deadline: "2026-03-20"},
		{ID: "none", Name: "None"},
	}

	alerts := Check(NewState(nil), projects, now)
	require.Len(t, alerts, 3)

	byID := map[string]Alert{}
	for _, a := range alerts {
		byID[a.ProjectID] = a
	}
	assert.Equal(t, KindOverdue, byID["overdue"].Kind)
	assert.Equal(t, KindDueSoon, byID["today"].Kind)
	assert.Equal(t, 0, byID["today"].DaysLeft)
	assert.Equal(t, KindDueSoon, byID["tomorrow"].Kind)
	assert.Equal(t, 1, byID["tomorrow"].DaysLeft)
	assert.NotContains(t, byID, "later")
	assert.NotContains(t, byID, "none")
}

func TestCheckSameDayDedupe(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	projects := []model.Project{{ID: "p1", Name: "Late", Deadline: "2026-03-13"}}
	state := NewState(nil)

	first := Check(state, projects, now)
	require.Len(t, first, 1)

	again := Check(state, projects, now.Add(2*time.Hour))
	assert.Empty(t, again)
}

func TestCheckNextDayRefire(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	projects := []model.Project{{ID: "p1", Name: "Late", Deadline: "2026-03-13"}}
	state := NewState(nil)

	first := Check(state, projects, now)
	require.Len(t, first, 1)

	nextDay := Check(state, projects, now.Add(24*time.Hour))
	require.Len(t, nextDay, 1)
	assert.Equal(t, KindOverdue, nextDay[0].Kind)
}

func TestCheckOutsideBandStaysUnmarked(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	state := NewState(nil)

	// two days out: no alert, not marked
	projects := []model.Project{{ID: "p1", Name: "Soon", Deadline: "2026-03-17"}}
	assert.Empty(t, Check(state, projects, now))
	assert.False(t, state.Shown("p1"))

	// one day later it enters the band and fires on the same calendar state
	later := Check(state, projects, now.Add(24*time.Hour))
	require.Len(t, later, 1)
	assert.Equal(t, KindDueSoon, later[0].Kind)
}

func TestMarkIdempotent(t *testing.T) {
	state := NewState(nil)
	state.Mark("p1")
	state.Mark("p1")
	assert.True(t, state.Shown("p1"))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Deadline passed for X",
		Message(Alert{Name: "X", Kind: KindOverdue, DaysLeft: -2}))
	assert.Equal(t, "Deadline today for X",
		Message(Alert{Name: "X", Kind: KindDueSoon, DaysLeft: 0}))
	assert.Equal(t, "Deadline tomorrow for X",
		Message(Alert{Name: "X", Kind: KindDueSoon, DaysLeft: 1}))
}
