// Package notify decides, for each project with a deadline, whether a
// deadline alert should fire now, without repeating an alert within the same
// calendar day. The shown map and the last reset date survive restarts
// through the local cache.
package notify

import (
	"time"

	"github.com/achaendus12-spec/my-project-manager/internal/cache"
	"github.com/achaendus12-spec/my-project-manager/internal/logger"
	"github.com/achaendus12-spec/my-project-manager/internal/model"
)

// Alert kinds
const (
	KindOverdue = "overdue"
	KindDueSoon = "due_soon"
)

// Alert is a deadline notification ready for display
type Alert struct {
	ProjectID string
	Name      string
	Kind      string
	DaysLeft  int
}

// ShouldReset reports whether the shown map is stale: the last reset
// happened on a different calendar day than today
func ShouldReset(lastReset, today string) bool {
	return lastReset != today
}

// State tracks which projects have already alerted today. It is loaded from
// the durable cache on construction and written back after every change.
type State struct {
	shown     map[string]bool
	lastReset string
	cache     *cache.Cache // optional
}

// NewState loads persisted notification state; with a nil cache the state is
// purely in-memory
func NewState(c *cache.Cache) *State {
	s := &State{shown: map[string]bool{}, cache: c}
	if c == nil {
		return s
	}
	if shown, err := c.LoadShown(); err == nil && shown != nil {
		s.shown = shown
	}
	if last, err := c.LoadLastReset(); err == nil {
		s.lastReset = last
	}
	return s
}

// Shown reports whether the project has already alerted today
func (s *State) Shown(id string) bool {
	return s.shown[id]
}

// Mark records that the project alerted today; marking twice is a no-op
func (s *State) Mark(id string) {
	if s.shown[id] {
		return
	}
	s.shown[id] = true
	s.persist()
}

// ResetIfNeeded clears the shown map when the calendar day has changed.
// Returns true when a reset happened.
func (s *State) ResetIfNeeded(today string) bool {
	if !ShouldReset(s.lastReset, today) {
		return false
	}
	s.shown = map[string]bool{}
	s.lastReset = today
	s.persist()
	return true
}

func (s *State) persist() {
	if s.cache == nil {
		return
	}
	if err := s.cache.SaveShown(s.shown); err != nil {
		logger.Warn("Failed to persist shown notifications", logger.F("error", err))
	}
	if err := s.cache.SaveLastReset(s.lastReset); err != nil {
		logger.Warn("Failed to persist notification reset date", logger.F("error", err))
	}
}

// Check runs one notification tick against a snapshot of the collection:
// daily reset first, then for each project with a deadline and no alert yet
// today, classify it as overdue (days left < 0) or due soon (0 or 1 days
// left) and mark it shown. Projects outside both bands stay unmarked.
func Check(state *State, projects []model.Project, now time.Time) []Alert {
	state.ResetIfNeeded(now.Format(model.DateLayout))

	var alerts []Alert
	for _, p := range projects {
		left, ok := p.DaysLeft(now)
		if !ok || state.Shown(p.ID) {
			continue
		}

		switch {
		case left < 0:
			alerts = append(alerts, Alert{ProjectID: p.ID, Name: p.Name, Kind: KindOverdue, DaysLeft: left})
		case left <= 1:
			alerts = append(alerts, Alert{ProjectID: p.ID, Name: p.Name, Kind: KindDueSoon, DaysLeft: left})
		default:
			continue
		}
		state.Mark(p.ID)
	}
	return alerts
}
