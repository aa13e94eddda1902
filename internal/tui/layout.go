package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/billie-coop/typeahead/internal/tui/components/autocomplete"
	"github.com/billie-coop/typeahead/internal/tui/styles"
)

const (
	marginLeft = 2
	// title line and a blank line sit above the search box
	searchTop = 2

	minSearchWidth = 20
	maxSearchWidth = 60
)

// resizeComponents recalculates component sizes after a window resize
func (m *Model) resizeComponents() tea.Cmd {
	searchWidth := max(minSearchWidth, min(maxSearchWidth, m.width-2*marginLeft))

	cmds := []tea.Cmd{
		m.search.SetSize(searchWidth, 0),
		m.statusBar.SetSize(m.width, 1),
	}
	m.search.SetOffset(marginLeft, searchTop)
	m.setOptionWidth(searchWidth)

	return tea.Batch(cmds...)
}

// setOptionWidth rebuilds the row renderer for the dropdown's inner width
func (m *Model) setOptionWidth(searchWidth int) {
	// dropdown borders and row padding
	m.optionView = styles.MarkdownOptionView(max(1, searchWidth-4))
	clear(m.rowCache)
}

// View renders the UI
func (m *Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("Initializing...")
	}

	s := styles.CurrentTheme().S()

	sections := []string{
		styles.RenderThemeGradient("typeahead"),
		"",
		m.search.View(),
	}
	if m.selected != nil && !m.search.Focused() {
		sections = append(sections, "", s.Muted.Render("Selected: ")+m.renderOption(*m.selected))
	}

	body := lipgloss.NewStyle().
		PaddingLeft(marginLeft).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	gap := max(0, m.height-lipgloss.Height(body)-1)
	return tea.NewView(body + strings.Repeat("\n", gap+1) + m.statusBar.View())
}

// helpHint renders the key bindings for the status bar
func helpHint(keys autocomplete.KeyMap) string {
	bindings := append([]key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	}, keys.ShortHelp()...)
	bindings = append(bindings,
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
