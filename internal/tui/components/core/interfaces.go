package core

import tea "github.com/charmbracelet/bubbletea/v2"

// Sizeable components can be resized
type Sizeable interface {
	SetSize(width, height int) tea.Cmd
}

// Focusable components can receive keyboard focus
type Focusable interface {
	Focus() tea.Cmd
	Blur() tea.Cmd
	Focused() bool
}

// Closer components hold scheduled work that must be dropped on unmount
type Closer interface {
	Close()
}
