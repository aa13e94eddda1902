package autocomplete

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/billie-coop/typeahead/internal/tui/styles"
)

// View renders the input box and, below it, either the loading animation
// or the option rows.
func (m *Model[T]) View() string {
	s := styles.CurrentTheme().S()

	// The field always shows the caller's value, even if the caller has
	// not yet accepted the last edit.
	field := m.input
	if field.Value() != m.props.InputValue {
		field.SetValue(m.props.InputValue)
	}

	boxStyle := s.Input
	if m.Focused() {
		boxStyle = s.InputFocused
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, field.View(), " ", styles.RenderSearchIcon())
	box := boxStyle.Width(m.width).Render(line)

	dropdown := m.dropdownView(s)
	if dropdown == "" {
		return box
	}
	return lipgloss.JoinVertical(lipgloss.Left, box, dropdown)
}

func (m *Model[T]) dropdownView(s *styles.Styles) string {
	container := s.Dropdown.Width(m.width)
	inner := max(1, m.width-2)

	switch {
	case m.props.Loading:
		return container.Render(lipgloss.PlaceHorizontal(inner, lipgloss.Center, m.spinner.View()))
	case m.Focused():
		return container.Render(strings.Join(m.renderRows(s, inner), "\n"))
	}
	return ""
}

// visibleRange returns the [start, end) window of option indexes shown
func (m *Model[T]) visibleRange() (int, int) {
	n := len(m.props.Options)
	if m.maxRows <= 0 || n <= m.maxRows {
		return 0, n
	}
	return m.top, min(n, m.top+m.maxRows)
}

func (m *Model[T]) renderRows(s *styles.Styles, width int) []string {
	start, end := m.visibleRange()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		style := s.Row
		if i == m.highlight {
			style = s.RowSelected
		}
		rows = append(rows, style.Width(width).Render(m.props.GetOptionView(m.props.Options[i])))
	}
	return rows
}

// rowAt maps a line offset below the input box to an option index
func (m *Model[T]) rowAt(line int) (int, bool) {
	if line < 0 {
		return 0, false
	}
	s := styles.CurrentTheme().S()
	start, _ := m.visibleRange()
	for i, row := range m.renderRows(s, max(1, m.width-2)) {
		h := max(1, lipgloss.Height(row))
		if line < h {
			return start + i, true
		}
		line -= h
	}
	return 0, false
}
