package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

const searchTimeout = 5 * time.Second

// searchCmd queries the catalog off the event loop
func (m *Model) searchCmd(query string) tea.Cmd {
	searcher := m.searcher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()

		entries, err := searcher.Search(ctx, query)
		return optionsLoadedMsg{query: query, entries: entries, err: err}
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
