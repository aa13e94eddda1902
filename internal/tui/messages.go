package tui

import "github.com/billie-coop/typeahead/internal/catalog"

// optionsLoadedMsg carries the result of a catalog search for query
type optionsLoadedMsg struct {
	query   string
	entries []catalog.Entry
	err     error
}
