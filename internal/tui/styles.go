package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Priority colors
	ColorHigh   = lipgloss.Color("#FF6B6B")
	ColorMedium = lipgloss.Color("#FFE66D")
	ColorLow    = lipgloss.Color("#4ECDC4")

	// Status colors
	ColorCompleted = lipgloss.Color("#95E1A3")
	ColorOverdue   = lipgloss.Color("#FF6B6B")

	// UI colors
	Primary   = lipgloss.Color("#4ECDC4")
	Surface   = lipgloss.Color("#16213e")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
	Highlight = lipgloss.Color("#4ECDC4")
)

// Styles
var (
	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	// Project list
	ListStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// Detail pane
	DetailStyle = lipgloss.NewStyle().
			Width(40).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(Border).
			Padding(1, 1)

	ItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	ItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	ItemCompletedStyle = lipgloss.NewStyle().
				Foreground(TextMuted).
				Strikethrough(true).
				Padding(0, 1)

	OverdueStyle = lipgloss.NewStyle().Foreground(ColorOverdue).Bold(true)
	DueSoonStyle = lipgloss.NewStyle().Foreground(ColorMedium)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	// Input modal
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// PriorityStyle returns the style for a priority level
func PriorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "High":
		return lipgloss.NewStyle().Foreground(ColorHigh).Bold(true)
	case "Low":
		return lipgloss.NewStyle().Foreground(ColorLow)
	default:
		return lipgloss.NewStyle().Foreground(ColorMedium)
	}
}
