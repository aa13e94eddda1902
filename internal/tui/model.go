package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/billie-coop/typeahead/internal/catalog"
	"github.com/billie-coop/typeahead/internal/logging"
	"github.com/billie-coop/typeahead/internal/tui/components/autocomplete"
	"github.com/billie-coop/typeahead/internal/tui/components/core"
	"github.com/billie-coop/typeahead/internal/tui/components/status"
)

// Searcher looks up catalog entries for a query
type Searcher interface {
	Search(ctx context.Context, query string) ([]catalog.Entry, error)
}

// Options configures the search screen
type Options struct {
	Searcher    Searcher
	Placeholder string
	Delay       time.Duration
	MaxRows     int
	// Scheduler replaces tea.Tick for the debounce timer and spinner
	Scheduler core.Scheduler
}

// Model is the root model: a search box over the catalog plus a status bar.
// It owns everything the autocomplete widget is handed through props.
type Model struct {
	width  int
	height int

	// Components
	search    *autocomplete.Model[catalog.Entry]
	statusBar *status.Component

	searcher    Searcher
	placeholder string

	// Search state
	inputValue string
	options    []catalog.Entry
	loading    bool
	selected   *catalog.Entry
	err        error

	optionView func(string) string
	rowCache   map[string]string

	// set by widget callbacks, drained after the widget's Update
	pending     []tea.Cmd
	blurPending bool
}

// New creates the root model
func New(opts Options) *Model {
	m := &Model{
		statusBar:   status.New(),
		searcher:    opts.Searcher,
		placeholder: opts.Placeholder,
		rowCache:    make(map[string]string),
	}

	widgetOpts := []autocomplete.Option{autocomplete.WithMaxRows(opts.MaxRows)}
	if opts.Delay > 0 {
		widgetOpts = append(widgetOpts, autocomplete.WithDelay(opts.Delay))
	}
	if opts.Scheduler != nil {
		widgetOpts = append(widgetOpts, autocomplete.WithScheduler(opts.Scheduler))
	}
	m.search = autocomplete.New(m.searchProps(), widgetOpts...)
	m.search.SetOffset(marginLeft, searchTop)
	m.statusBar.SetHint(helpHint(m.search.KeyMap()))
	m.setOptionWidth(m.search.Width())

	return m
}

// searchProps hands the current state to the widget
func (m *Model) searchProps() autocomplete.Props[catalog.Entry] {
	return autocomplete.Props[catalog.Entry]{
		Placeholder:    m.placeholder,
		Options:        m.options,
		InputValue:     m.inputValue,
		Loading:        m.loading,
		OnInputChange:  m.handleInputChange,
		OnSelectOption: m.handleSelect,
		GetOptionView:  m.renderOption,
		FetchOptions:   m.fetchOptions,
	}
}

// Init mounts the search box focused
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.search.Init(), m.search.Focus())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmds = append(cmds, m.resizeComponents())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.search.Close()
			return m, tea.Quit
		case "tab":
			if m.search.Focused() {
				cmds = append(cmds, m.search.Blur())
			} else {
				cmds = append(cmds, m.search.Focus())
			}
			return m, tea.Batch(cmds...)
		}

	case optionsLoadedMsg:
		cmds = append(cmds, m.handleOptionsLoaded(msg))
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)

	m.statusBar, cmd = m.statusBar.Update(msg)
	cmds = append(cmds, cmd)

	cmds = append(cmds, m.pending...)
	m.pending = nil
	if m.blurPending {
		m.blurPending = false
		cmds = append(cmds, m.search.Blur())
	}

	// Hand whatever the callbacks changed back to the widget
	cmds = append(cmds, m.search.SetProps(m.searchProps()))

	return m, tea.Batch(cmds...)
}

func (m *Model) handleInputChange(value string) {
	m.inputValue = value
}

func (m *Model) handleSelect(entry catalog.Entry) {
	m.selected = &entry
	m.inputValue = entry.Name
	m.blurPending = true
	m.pending = append(m.pending, m.statusBar.ShowSuccess("Selected "+entry.Name))
	logging.Info("option selected", "name", entry.Name)
}

// fetchOptions runs once typing pauses. An empty query clears the options
// without searching.
func (m *Model) fetchOptions() tea.Cmd {
	query := m.inputValue
	if isBlank(query) {
		m.options = nil
		m.loading = false
		return nil
	}

	m.loading = true
	logging.Debug("fetching options", "query", query)
	return m.searchCmd(query)
}

func (m *Model) handleOptionsLoaded(msg optionsLoadedMsg) tea.Cmd {
	if msg.query != m.inputValue {
		logging.Debug("dropping stale results", "query", msg.query, "current", m.inputValue)
		return nil
	}

	m.loading = false
	if msg.err != nil {
		m.err = msg.err
		logging.Error("catalog search failed", "query", msg.query, "error", msg.err)
		return m.statusBar.ShowError("Search failed: " + msg.err.Error())
	}

	m.err = nil
	m.options = msg.entries
	return nil
}

// renderOption renders an entry's markdown description, falling back to
// its name
func (m *Model) renderOption(entry catalog.Entry) string {
	if row, ok := m.rowCache[entry.Name]; ok {
		return row
	}
	source := entry.Description
	if isBlank(source) {
		source = entry.Name
	}
	row := m.optionView(source)
	m.rowCache[entry.Name] = row
	return row
}

// InputValue returns the current search text
func (m *Model) InputValue() string {
	return m.inputValue
}

// Selected returns the last selected entry, if any
func (m *Model) Selected() *catalog.Entry {
	return m.selected
}
