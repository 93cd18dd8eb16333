package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
	Enter    key.Binding
	Add      key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	Note     key.Binding
	Subtask  key.Binding
	Sort     key.Binding
	HideDone key.Binding
	Filter   key.Binding
	Help     key.Binding
	Quit     key.Binding
	Escape   key.Binding
	Refresh  key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "project list")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "detail pane")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "advance/toggle")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add project")),
	Toggle:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle subtask")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Note:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add note")),
	Subtask:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "add subtask")),
	Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle progress sort")),
	HideDone: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "hide completed")),
	Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Refresh:  key.NewBinding(key.WithKeys("R", "r"), key.WithHelp("R", "reload")),
}
