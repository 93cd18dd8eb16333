package ui

import "fmt"

// Scripted is a Surface with canned answers, for tests and non-interactive use
type Scripted struct {
	ConfirmAnswer bool
	ImportAnswer  ImportChoice
	Toasts        []string
}

// Confirm returns the scripted answer
func (s *Scripted) Confirm(string) bool { return s.ConfirmAnswer }

// ChooseImportMode returns the scripted answer
func (s *Scripted) ChooseImportMode(int) ImportChoice { return s.ImportAnswer }

// Toast records the message
func (s *Scripted) Toast(kind, msg string) {
	s.Toasts = append(s.Toasts, fmt.Sprintf("%s: %s", kind, msg))
}
