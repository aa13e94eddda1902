package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/billie-coop/typeahead/internal/catalog"
	"github.com/billie-coop/typeahead/internal/logging"
	"github.com/billie-coop/typeahead/internal/tui"
)

func (a *app) openCatalog() (*catalog.Store, error) {
	path := a.resolve(a.cfg.CatalogPath)
	store, err := catalog.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	return store, nil
}

// runTUI starts the search screen
func (a *app) runTUI(_ *cobra.Command, _ []string) error {
	store, err := a.openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	searcher := catalog.NewSearcher(store, a.cfg.SearchLimit, a.cfg.SearchesPerSecond)
	m := tui.New(tui.Options{
		Searcher:    searcher,
		Placeholder: a.cfg.Placeholder,
		Delay:       a.cfg.Debounce(),
		MaxRows:     a.cfg.MaxRows,
	})

	logging.Info("starting search", "catalog", a.cfg.CatalogPath, "debounce", a.cfg.Debounce())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	if sel := m.Selected(); sel != nil {
		logging.Info("exited with selection", "name", sel.Name)
	}
	return nil
}
