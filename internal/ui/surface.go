// Package ui is the interaction channel between the core and the person at
// the keyboard: confirmation dialogs, import-mode choices, and toast-style
// status lines. The store and gateway only see the Surface interface, so
// tests substitute a scripted implementation.
package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ImportChoice is the tri-state answer to an import prompt
type ImportChoice int

const (
	ImportCancel ImportChoice = iota
	ImportReplace
	ImportMerge
)

// Toast kinds
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastWarning = "warning"
	ToastInfo    = "info"
)

// Surface is the confirm/choice dialog and notification channel
type Surface interface {
	// Confirm asks a yes/no question and returns the answer
	Confirm(title string) bool
	// ChooseImportMode asks whether an import of n projects should replace
	// or merge into the current collection
	ChooseImportMode(n int) ImportChoice
	// Toast shows a transient status message
	Toast(kind, msg string)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
)

// Terminal renders the surface with interactive prompts on the terminal
type Terminal struct{}

// NewTerminal creates a terminal surface
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Confirm shows a yes/no prompt
func (t *Terminal) Confirm(title string) bool {
	var yes bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&yes),
	))
	if err := form.Run(); err != nil {
		return false
	}
	return yes
}

// ChooseImportMode asks replace / merge / cancel
func (t *Terminal) ChooseImportMode(n int) ImportChoice {
	var choice ImportChoice
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[ImportChoice]().
			Title(fmt.Sprintf("File contains %d projects. Choose an action:", n)).
			Options(
				huh.NewOption("Replace current projects", ImportReplace),
				huh.NewOption("Merge (keep existing on id conflict)", ImportMerge),
				huh.NewOption("Cancel", ImportCancel),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return ImportCancel
	}
	return choice
}

// Toast prints a styled one-line status message
func (t *Terminal) Toast(kind, msg string) {
	switch kind {
	case ToastSuccess:
		fmt.Println(successStyle.Render("✓ " + msg))
	case ToastError:
		fmt.Println(errorStyle.Render("✗ " + msg))
	case ToastWarning:
		fmt.Println(warningStyle.Render("⚠ " + msg))
	default:
		fmt.Println(infoStyle.Render("ℹ " + msg))
	}
}
