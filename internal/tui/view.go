package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/achaendus12-spec/my-project-manager/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	list := m.renderList()
	detail := m.renderDetail()
	statusBar := m.renderStatusBar()

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, list, detail)

	if m.mode == ModeAddProject || m.mode == ModeAddNote || m.mode == ModeAddSubtask || m.mode == ModeFilter {
		modal := m.renderModal()
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			modal,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.mode == ModeConfirmDelete {
		modal := m.renderConfirmModal()
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			modal,
			lipgloss.WithWhitespaceChars(" "),
		)
	}

	if m.mode == ModeHelp {
		mainContent = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, statusBar)
}

func (m Model) renderList() string {
	width := m.width - 44
	var s string

	now := time.Now()
	s += HeaderStyle.Render(fmt.Sprintf("Projects (%d)", len(m.projects))) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(repeat("─", width-6)) + "\n\n"

	if len(m.projects) == 0 {
		s += HelpStyle.Render("  No projects. Press 'a' to add one.")
	}

	for i, p := range m.projects {
		cursor := "  "
		style := ItemStyle
		if i == m.cursor && m.pane == PaneList {
			cursor = "❯ "
			style = ItemSelectedStyle
		}
		if p.Status == model.StatusCompleted {
			style = ItemCompletedStyle
		}

		due := ""
		if left, ok := p.DaysLeft(now); ok {
			switch {
			case p.IsOverdue(now):
				due = OverdueStyle.Render(fmt.Sprintf("overdue %dd", -left))
			case left == 0:
				due = DueSoonStyle.Render("due today")
			case left == 1:
				due = DueSoonStyle.Render("due tomorrow")
			default:
				due = HelpStyle.Render(fmt.Sprintf("%dd left", left))
			}
		}

		line := fmt.Sprintf("%s%-28s %3d%%  %s", cursor, truncate(p.Name, 28), p.Progress(),
			PriorityStyle(p.Priority).Render(p.Priority))
		s += style.Render(line) + " " + due + "\n"
	}

	return ListStyle.Width(width).Height(m.height - 2).Render(s)
}

func (m Model) renderDetail() string {
	var s string

	p := m.currentProject()
	if p == nil {
		return DetailStyle.Height(m.height - 2).Render("No project selected")
	}

	s += HeaderStyle.Render(truncate(p.Name, 36)) + "\n"
	s += HelpStyle.Render(p.Category) + "\n\n"
	s += fmt.Sprintf("Status:   %s\n", p.Status)
	s += fmt.Sprintf("Priority: %s\n", PriorityStyle(p.Priority).Render(p.Priority))
	if p.Deadline != "" {
		s += fmt.Sprintf("Deadline: %s\n", p.Deadline)
	}
	s += fmt.Sprintf("Progress: %d%%\n", p.Progress())

	if p.Description != "" {
		s += "\n" + HelpStyle.Render(truncate(p.Description, 120)) + "\n"
	}

	s += "\n" + lipgloss.NewStyle().Bold(true).Render("Checklist") + "\n"
	if len(p.Subtasks) == 0 {
		s += HelpStyle.Render("  (empty, press 't')") + "\n"
	}
	for i, st := range p.Subtasks {
		cursor := "  "
		style := ItemStyle
		if i == m.detailLine && m.pane == PaneDetail {
			cursor = "❯ "
			style = ItemSelectedStyle
		}
		icon := "[ ]"
		if st.Completed {
			icon = "[x]"
		}
		s += style.Render(fmt.Sprintf("%s%s %s", cursor, icon, truncate(st.Text, 30))) + "\n"
	}

	if len(p.Notes) > 0 {
		s += "\n" + lipgloss.NewStyle().Bold(true).Render("Notes") + "\n"
		for _, n := range p.Notes {
			s += HelpStyle.Render(fmt.Sprintf("  %s  %s", n.Timestamp.Format("Jan 2"), truncate(n.Text, 30))) + "\n"
		}
	}

	if len(p.Attachments) > 0 {
		s += "\n" + lipgloss.NewStyle().Bold(true).Render("Attachments") + "\n"
		for _, a := range p.Attachments {
			s += HelpStyle.Render("  📎 "+truncate(a.Name, 32)) + "\n"
		}
	}

	return DetailStyle.Height(m.height - 2).Render(s)
}

func (m Model) renderStatusBar() string {
	left := m.message
	if left == "" {
		left = "a add · enter advance · x toggle · d delete · / search · ? help · q quit"
	}

	right := ""
	if m.filter.Query != "" {
		right += fmt.Sprintf(" /%s", m.filter.Query)
	}
	if m.filter.HideCompleted {
		right += " [hiding completed]"
	}
	if m.filter.SortProgress != "" {
		right += fmt.Sprintf(" [sort %s]", m.filter.SortProgress)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return StatusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderModal() string {
	title := ""
	switch m.mode {
	case ModeAddProject:
		title = "New project"
	case ModeAddNote:
		title = "Add note"
	case ModeAddSubtask:
		title = "Add subtask"
	case ModeFilter:
		title = "Search"
	}
	return ModalStyle.Render(
		lipgloss.NewStyle().Bold(true).Foreground(Primary).Render(title) + "\n\n" +
			m.input.View() + "\n\n" +
			HelpStyle.Render("enter confirm · esc cancel"),
	)
}

func (m Model) renderConfirmModal() string {
	name := ""
	if p := m.currentProject(); p != nil {
		name = p.Name
	}
	return ModalStyle.Render(
		lipgloss.NewStyle().Bold(true).Foreground(ColorOverdue).Render("Delete project?") + "\n\n" +
			truncate(name, 40) + "\n\n" +
			HelpStyle.Render("y delete · any other key cancel"),
	)
}

func (m Model) renderHelp() string {
	help := `
  Navigation
    ↑/k ↓/j        move cursor
    tab ←/h →/l    switch pane

  Projects
    a              add project
    enter          advance status
    d              delete (with confirmation)
    R              reload from server

  Checklist and notes
    x / enter      toggle subtask (detail pane)
    t              add subtask
    n              add note
    d              delete subtask (detail pane)

  View
    /              live search
    s              cycle progress sort
    c              hide completed

  Press any key to close.
`
	return ListStyle.Render(help)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func repeat(s string, n int) string {
	if n < 1 {
		return ""
	}
	return strings.Repeat(s, n)
}
