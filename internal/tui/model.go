package tui

import (
	"github.com/achaendus12-spec/my-project-manager/internal/cache"
	"github.com/achaendus12-spec/my-project-manager/internal/logger"
	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/achaendus12-spec/my-project-manager/internal/notify"
	"github.com/achaendus12-spec/my-project-manager/internal/store"
	"github.com/achaendus12-spec/my-project-manager/internal/ui"
	"github.com/achaendus12-spec/my-project-manager/internal/view"
	"github.com/charmbracelet/bubbles/textinput"
)

// Pane represents which pane is focused
type Pane int

const (
	PaneList Pane = iota
	PaneDetail
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddProject
	ModeAddNote
	ModeAddSubtask
	ModeFilter
	ModeConfirmDelete
	ModeHelp
)

// Add-project form steps
const (
	stepName = iota
	stepCategory
	stepDescription
	stepDeadline
	stepPriority
)

// Model is the main dashboard model
type Model struct {
	store  *store.Store
	cache  *cache.Cache
	userID string

	// Projection of the collection under the current filter
	projects []model.Project
	filter   view.Filter

	// Deadline alerts
	notifyState *notify.State
	toastChan   chan string

	// UI state
	width      int
	height     int
	pane       Pane
	mode       Mode
	cursor     int
	detailLine int

	// Input
	input   textinput.Model
	draft   store.Draft
	addStep int

	message string
}

// NewModel creates the dashboard model over a loaded store
func NewModel(st *store.Store, c *cache.Cache, userID string) Model {
	logger.Info("Initializing dashboard model")

	ti := textinput.New()
	ti.Placeholder = "Project name..."
	ti.CharLimit = 256
	ti.Width = 50

	m := Model{
		store:       st,
		cache:       c,
		userID:      userID,
		notifyState: notify.NewState(c),
		toastChan:   make(chan string, 8), // buffered so store ops never block
		input:       ti,
	}

	// Route store confirms and toasts through the dashboard instead of
	// terminal prompts; the confirm happens in ModeConfirmDelete first.
	st.SetSurface(&dashboardSurface{toasts: m.toastChan})

	m.refresh()
	logger.Debug("Dashboard model initialized", logger.F("projects", len(m.projects)))
	return m
}

// refresh recomputes the projection from a fresh collection snapshot
func (m *Model) refresh() {
	m.projects = view.Apply(m.store.Projects(), m.filter)
	if m.cursor >= len(m.projects) {
		m.cursor = 0
	}
	m.detailLine = 0
}

func (m *Model) currentProject() *model.Project {
	if m.cursor < len(m.projects) {
		return &m.projects[m.cursor]
	}
	return nil
}

// dashboardSurface feeds store toasts into the update loop. Confirms always
// pass because the dashboard asks its own confirmation question beforehand.
type dashboardSurface struct {
	toasts chan string
}

func (d *dashboardSurface) Confirm(string) bool { return true }

func (d *dashboardSurface) ChooseImportMode(int) ui.ImportChoice { return ui.ImportCancel }

func (d *dashboardSurface) Toast(kind, msg string) {
	select {
	case d.toasts <- msg:
	default:
	}
}
