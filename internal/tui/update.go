package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/achaendus12-spec/my-project-manager/internal/notify"
	"github.com/achaendus12-spec/my-project-manager/internal/store"
	"github.com/achaendus12-spec/my-project-manager/internal/view"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives the periodic deadline check
type tickMsg time.Time

// toastMsg carries a store toast into the update loop
type toastMsg string

// Init starts the deadline ticker and the toast listener
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.waitForToast())
}

func tickCmd() tea.Cmd {
	return tea.Every(30*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) waitForToast() tea.Cmd {
	return func() tea.Msg {
		return toastMsg(<-m.toastChan)
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.runDeadlineCheck()
		return m, tickCmd()

	case toastMsg:
		m.message = string(msg)
		return m, m.waitForToast()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAddProject:
			return m.updateAddProject(msg)
		case ModeAddNote, ModeAddSubtask:
			return m.updateEntryInput(msg)
		case ModeFilter:
			return m.updateFilter(msg)
		case ModeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// runDeadlineCheck performs one notification tick over a fresh snapshot
func (m *Model) runDeadlineCheck() {
	alerts := notify.Check(m.notifyState, m.store.Projects(), time.Now())
	if len(alerts) > 0 {
		m.message = notify.Message(alerts[0])
		if len(alerts) > 1 {
			m.message += fmt.Sprintf(" (+%d more)", len(alerts)-1)
		}
	}
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		if m.pane == PaneList {
			m.pane = PaneDetail
		} else {
			m.pane = PaneList
		}

	case key.Matches(msg, keys.Left):
		m.pane = PaneList

	case key.Matches(msg, keys.Right):
		m.pane = PaneDetail

	case key.Matches(msg, keys.Up):
		m.handleUp()

	case key.Matches(msg, keys.Down):
		m.handleDown()

	case key.Matches(msg, keys.Add):
		return m.startAddProject()

	case key.Matches(msg, keys.Enter):
		if m.pane == PaneList {
			m.handleAdvanceStatus()
		} else {
			m.handleToggleSubtask()
		}

	case key.Matches(msg, keys.Toggle):
		m.handleToggleSubtask()

	case key.Matches(msg, keys.Delete):
		if m.pane == PaneList && m.currentProject() != nil {
			m.mode = ModeConfirmDelete
		} else if m.pane == PaneDetail {
			m.handleDeleteSubtask()
		}

	case key.Matches(msg, keys.Note):
		return m.startEntryInput(ModeAddNote, "Note text...")

	case key.Matches(msg, keys.Subtask):
		return m.startEntryInput(ModeAddSubtask, "Subtask text...")

	case key.Matches(msg, keys.Sort):
		m.cycleSort()

	case key.Matches(msg, keys.HideDone):
		m.filter.HideCompleted = !m.filter.HideCompleted
		m.refresh()

	case key.Matches(msg, keys.Filter):
		return m.startFilter()

	case key.Matches(msg, keys.Escape):
		if m.filter.Query != "" {
			m.filter.Query = ""
			m.refresh()
			m.message = "Search cleared"
		}

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, keys.Refresh):
		m.handleReload()
	}

	return m, nil
}

func (m *Model) handleUp() {
	if m.pane == PaneList {
		if m.cursor > 0 {
			m.cursor--
			m.detailLine = 0
		}
	} else if m.detailLine > 0 {
		m.detailLine--
	}
}

func (m *Model) handleDown() {
	if m.pane == PaneList {
		if m.cursor < len(m.projects)-1 {
			m.cursor++
			m.detailLine = 0
		}
	} else if p := m.currentProject(); p != nil && m.detailLine < len(p.Subtasks)-1 {
		m.detailLine++
	}
}

func (m *Model) cycleSort() {
	switch m.filter.SortProgress {
	case view.SortNone:
		m.filter.SortProgress = view.SortAsc
		m.message = "Sorted by progress (ascending)"
	case view.SortAsc:
		m.filter.SortProgress = view.SortDesc
		m.message = "Sorted by progress (descending)"
	default:
		m.filter.SortProgress = view.SortNone
		m.message = "Sort cleared"
	}
	m.refresh()
}

func (m *Model) handleAdvanceStatus() {
	p := m.currentProject()
	if p == nil {
		return
	}
	row, err := m.store.AdvanceStatus(context.Background(), p.ID)
	if err == nil {
		m.message = fmt.Sprintf("%s: %s", row.Name, row.Status)
	}
	m.refresh()
}

func (m *Model) handleToggleSubtask() {
	p := m.currentProject()
	if p == nil || m.detailLine >= len(p.Subtasks) {
		return
	}
	line := m.detailLine
	row, err := m.store.ToggleSubtask(context.Background(), p.ID, p.Subtasks[line].ID)
	if err == nil {
		m.message = fmt.Sprintf("Progress: %d%%", row.Progress())
	}
	m.refresh()
	m.detailLine = line
}

func (m *Model) handleDeleteSubtask() {
	p := m.currentProject()
	if p == nil || m.detailLine >= len(p.Subtasks) {
		return
	}
	_, _ = m.store.DeleteSubtask(context.Background(), p.ID, p.Subtasks[m.detailLine].ID)
	m.refresh()
}

func (m *Model) handleReload() {
	if m.userID == "" {
		m.message = "Not logged in - use 'pm auth login' first"
		return
	}
	if err := m.store.Load(context.Background(), m.userID); err == nil {
		m.message = "Reloaded"
	}
	m.refresh()
}

func (m Model) startAddProject() (tea.Model, tea.Cmd) {
	m.mode = ModeAddProject
	m.draft = store.Draft{Priority: model.PriorityMedium}
	m.addStep = stepName
	m.input.SetValue("")
	m.input.Placeholder = "Project name..."
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) startEntryInput(mode Mode, placeholder string) (tea.Model, tea.Cmd) {
	if m.currentProject() == nil {
		return m, nil
	}
	m.mode = mode
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) startFilter() (tea.Model, tea.Cmd) {
	m.mode = ModeFilter
	m.input.SetValue(m.filter.Query)
	m.input.Placeholder = "/"
	m.input.Focus()
	return m, textinput.Blink
}

// updateAddProject steps the draft form through its five fields
func (m Model) updateAddProject(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, keys.Enter):
		value := m.input.Value()
		switch m.addStep {
		case stepName:
			m.draft.Name = value
			m.input.SetValue("")
			m.input.Placeholder = "Category..."
		case stepCategory:
			m.draft.Category = value
			m.input.SetValue("")
			m.input.Placeholder = "Description..."
		case stepDescription:
			m.draft.Description = value
			m.input.SetValue("")
			m.input.Placeholder = "Deadline (YYYY-MM-DD)..."
		case stepDeadline:
			m.draft.Deadline = value
			m.input.SetValue(model.PriorityMedium)
			m.input.Placeholder = "Priority (Low, Medium, High)..."
		case stepPriority:
			if value != "" {
				m.draft.Priority = value
			}
			_, err := m.store.Create(context.Background(), m.draft)
			if err == nil {
				m.message = fmt.Sprintf("Added: %s", m.draft.Name)
			}
			m.refresh()
			m.mode = ModeNormal
			return m, nil
		}
		m.addStep++
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateEntryInput handles the single-field note and subtask prompts
func (m Model) updateEntryInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, keys.Enter):
		value := m.input.Value()
		p := m.currentProject()
		if value == "" || p == nil {
			m.mode = ModeNormal
			return m, nil
		}

		if m.mode == ModeAddNote {
			if _, err := m.store.AddNote(context.Background(), p.ID, value); err == nil {
				m.message = "Note added"
			}
		} else {
			if _, err := m.store.AddSubtask(context.Background(), p.ID, value); err == nil {
				m.message = "Subtask added"
			}
		}
		m.refresh()
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.filter.Query = ""
		m.refresh()
		return m, nil

	case key.Matches(msg, keys.Enter):
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Live filter as the user types
	m.filter.Query = m.input.Value()
	m.refresh()
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if p := m.currentProject(); p != nil {
			_, _ = m.store.Delete(context.Background(), p.ID)
			m.refresh()
		}
	}
	m.mode = ModeNormal
	return m, nil
}
