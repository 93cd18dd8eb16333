package model

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Priority levels for projects
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Status values a project moves through
const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// DateLayout is the calendar-date format used for deadlines (no time component)
const DateLayout = "2006-01-02"

// Project is the root tracked entity, owned by exactly one user
type Project struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	Deadline    string       `json:"deadline,omitempty"` // YYYY-MM-DD, empty = no deadline
	Priority    string       `json:"priority"`
	Status      string       `json:"status"`
	Notes       []Note       `json:"notes"`
	Subtasks    []Subtask    `json:"subtasks"`
	Attachments []Attachment `json:"attachments"`
	CreatedAt   time.Time    `json:"created_at"`
	OwnerID     string       `json:"user_id"`
}

// Note is a free-text entry on a project, newest appended last
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"ts"`
}

// Subtask is a checklist item; its completion ratio drives progress
type Subtask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Attachment is an append-only {url, name} pair
type Attachment struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// NewProject builds a draft project with defaults; the remote store assigns
// the persisted id and created_at on insert.
func NewProject(name, category, description, deadline, priority, ownerID string) Project {
	if priority == "" {
		priority = PriorityMedium
	}
	return Project{
		Name:        name,
		Category:    category,
		Description: description,
		Deadline:    deadline,
		Priority:    priority,
		Status:      StatusNotStarted,
		Notes:       []Note{},
		Subtasks:    []Subtask{},
		Attachments: []Attachment{},
		CreatedAt:   time.Now(),
		OwnerID:     ownerID,
	}
}

// Progress returns the integer completion percentage, 0 when there are no subtasks
func (p *Project) Progress() int {
	if len(p.Subtasks) == 0 {
		return 0
	}
	done := 0
	for _, st := range p.Subtasks {
		if st.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(p.Subtasks)) * 100))
}

// DaysLeft returns the number of calendar days until the deadline: 0 for a
// deadline today, 1 for tomorrow, negative once the deadline's end of day
// (23:59:59) has passed. ok is false when the project has no parseable
// deadline.
func (p *Project) DaysLeft(now time.Time) (int, bool) {
	if p.Deadline == "" {
		return 0, false
	}
	d, err := time.ParseInLocation(DateLayout, p.Deadline, now.Location())
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(math.Round(d.Sub(today).Hours() / 24)), true
}

// IsOverdue reports whether the deadline is strictly past and progress < 100
func (p *Project) IsOverdue(now time.Time) bool {
	left, ok := p.DaysLeft(now)
	if !ok {
		return false
	}
	return left < 0 && p.Progress() < 100
}

// NextStatus returns the status one step forward in the cycle
// Not Started → In Progress → Completed → Not Started.
func NextStatus(status string) string {
	switch status {
	case StatusNotStarted:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusNotStarted
	}
}

// ValidPriority reports whether s is one of the known priority levels
func ValidPriority(s string) bool {
	return s == PriorityLow || s == PriorityMedium || s == PriorityHigh
}

// ValidStatus reports whether s is one of the known status values
func ValidStatus(s string) bool {
	return s == StatusNotStarted || s == StatusInProgress || s == StatusCompleted
}

// NewEntryID returns an id for notes and subtasks, unique within a project.
// Millisecond timestamp plus a random suffix so ids minted in the same tick
// do not collide.
func NewEntryID(now time.Time) string {
	return fmt.Sprintf("%d-%06d", now.UnixMilli(), rand.Intn(1000000))
}
