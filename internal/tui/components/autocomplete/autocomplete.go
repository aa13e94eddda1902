// Package autocomplete is a debounced, generic autocomplete input.
//
// The widget is controlled: the caller owns the text, the options and the
// loading flag and hands them over through Props on every update. The
// widget owns only its focus, the highlighted row and a single debounce
// timer that calls FetchOptions once typing has paused.
//
// A parent model drives it like this:
//
//	func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		var cmds []tea.Cmd
//		_, cmd := m.search.Update(msg) // may call OnInputChange / OnSelectOption
//		cmds = append(cmds, cmd)
//		cmds = append(cmds, m.search.SetProps(m.searchProps()))
//		return m, tea.Batch(cmds...)
//	}
package autocomplete

import (
	"time"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/billie-coop/typeahead/internal/tui/components/anim"
	"github.com/billie-coop/typeahead/internal/tui/components/core"
)

const (
	defaultWidth = 40

	// input box: top border, text line, bottom border
	inputHeight = 3
)

// Props is the caller-owned configuration. Callbacks are not checked for
// nil; a missing callback panics where it is invoked.
type Props[T any] struct {
	Placeholder string
	Options     []T
	InputValue  string
	Loading     bool

	// OnInputChange receives the raw text after every edit
	OnInputChange func(string)
	// OnSelectOption receives the activated option, unmodified
	OnSelectOption func(T)
	// GetOptionView renders one dropdown row
	GetOptionView func(T) string
	// FetchOptions runs once the input has been quiet for the debounce
	// delay. The returned command, if any, is handed to Bubble Tea.
	FetchOptions func() tea.Cmd
}

// Model is the autocomplete widget
type Model[T any] struct {
	core.FocusableBase

	props   Props[T]
	keyMap  KeyMap
	input   textinput.Model
	spinner *anim.Spinner

	debounce *core.Debouncer
	armedFor string
	mounted  bool

	highlight int
	top       int
	maxRows   int

	width   int
	offsetX int
	offsetY int
}

var (
	_ core.Focusable = (*Model[string])(nil)
	_ core.Sizeable  = (*Model[string])(nil)
	_ core.Closer    = (*Model[string])(nil)
)

type config struct {
	delay    time.Duration
	schedule core.Scheduler
	width    int
	maxRows  int
	keyMap   KeyMap
	spinner  anim.SpinnerType
}

// Option configures New
type Option func(*config)

// WithDelay sets the debounce quiet period (default 700ms)
func WithDelay(d time.Duration) Option {
	return func(c *config) { c.delay = d }
}

// WithScheduler replaces tea.Tick for both the debounce timer and the
// loading animation
func WithScheduler(s core.Scheduler) Option {
	return func(c *config) { c.schedule = s }
}

// WithWidth sets the total width including borders
func WithWidth(w int) Option {
	return func(c *config) { c.width = w }
}

// WithMaxRows limits how many rows the dropdown shows at once; the window
// scrolls with the highlight. 0 shows every row.
func WithMaxRows(n int) Option {
	return func(c *config) { c.maxRows = n }
}

// WithKeyMap replaces the default key bindings
func WithKeyMap(k KeyMap) Option {
	return func(c *config) { c.keyMap = k }
}

// WithSpinner picks the loading animation
func WithSpinner(t anim.SpinnerType) Option {
	return func(c *config) { c.spinner = t }
}

// New creates an unfocused, unmounted widget. Call Init to mount it.
func New[T any](props Props[T], opts ...Option) *Model[T] {
	cfg := config{
		delay:   core.DefaultDebounce,
		width:   defaultWidth,
		keyMap:  DefaultKeyMap(),
		spinner: anim.SpinnerGradient,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = props.Placeholder
	ti.SetValue(props.InputValue)

	sp := anim.NewSpinner(cfg.spinner).WithScheduler(cfg.schedule)

	m := &Model[T]{
		props:    props,
		keyMap:   cfg.keyMap,
		input:    ti,
		spinner:  sp,
		debounce: core.NewDebouncer(cfg.delay, core.WithScheduler(cfg.schedule)),
		maxRows:  cfg.maxRows,
	}
	m.SetSize(cfg.width, 0)
	return m
}

// Init mounts the widget and arms the initial debounce timer
func (m *Model[T]) Init() tea.Cmd {
	if m.mounted || m.debounce.Closed() {
		return nil
	}
	m.mounted = true
	m.armedFor = m.props.InputValue

	cmds := []tea.Cmd{m.debounce.Arm()}
	if m.props.Loading {
		cmds = append(cmds, m.spinner.Start())
	}
	return tea.Batch(cmds...)
}

// Props returns the props the widget is currently rendering
func (m *Model[T]) Props() Props[T] {
	return m.props
}

// SetProps replaces the caller-owned state. A changed InputValue re-arms
// the debounce timer, cancelling any pending one.
func (m *Model[T]) SetProps(p Props[T]) tea.Cmd {
	prev := m.props
	m.props = p

	if p.Placeholder != prev.Placeholder {
		m.input.Placeholder = p.Placeholder
	}
	if p.InputValue != m.input.Value() {
		m.input.SetValue(p.InputValue)
	}
	if !sameOptions(p.Options, prev.Options) {
		m.highlight, m.top = 0, 0
	}
	m.clampHighlight()

	var cmds []tea.Cmd
	if m.mounted && p.InputValue != m.armedFor {
		m.armedFor = p.InputValue
		cmds = append(cmds, m.debounce.Arm())
	}

	switch {
	case p.Loading && m.mounted && !m.spinner.Running():
		cmds = append(cmds, m.spinner.Start())
	case !p.Loading && m.spinner.Running():
		m.spinner.Stop()
	}

	return tea.Batch(cmds...)
}

// Update handles key presses, mouse clicks, debounce expiry and animation
// ticks. Callbacks run synchronously inside Update.
func (m *Model[T]) Update(msg tea.Msg) (*Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case core.DebounceMsg:
		if m.debounce.Fired(msg) {
			return m, m.props.FetchOptions()
		}
		return m, nil

	case anim.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseClickMsg:
		return m, m.handleClick(msg.Mouse())

	case tea.KeyPressMsg:
		if !m.Focused() {
			return m, nil
		}
		return m, m.handleKey(msg)
	}

	// Cursor blink and paste go to the text field while focused
	if m.Focused() {
		return m, m.edit(msg)
	}
	return m, nil
}

func (m *Model[T]) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	open := m.dropdownOpen()

	switch {
	case key.Matches(msg, m.keyMap.Dismiss):
		return m.Blur()
	case open && key.Matches(msg, m.keyMap.Up):
		m.moveHighlight(-1)
		return nil
	case open && key.Matches(msg, m.keyMap.Down):
		m.moveHighlight(1)
		return nil
	case open && key.Matches(msg, m.keyMap.Select):
		m.selectRow(m.highlight)
		return nil
	}

	return m.edit(msg)
}

// edit feeds msg to the text field and reports the resulting text, if it
// changed, through OnInputChange.
func (m *Model[T]) edit(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if text := m.input.Value(); text != m.props.InputValue {
		m.props.OnInputChange(text)
	}
	return cmd
}

func (m *Model[T]) handleClick(mouse tea.Mouse) tea.Cmd {
	if mouse.Button != tea.MouseLeft {
		return nil
	}

	x, y := mouse.X-m.offsetX, mouse.Y-m.offsetY
	if x < 0 || x >= m.width || y < 0 {
		return m.Blur()
	}

	if y < inputHeight {
		return m.Focus()
	}

	if m.dropdownOpen() {
		if row, ok := m.rowAt(y - inputHeight); ok {
			m.selectRow(row)
			return nil
		}
	}

	return m.Blur()
}

// Focus focuses the input
func (m *Model[T]) Focus() tea.Cmd {
	if !m.Focused() {
		m.highlight, m.top = 0, 0
	}
	m.FocusableBase.Focus()
	return m.input.Focus()
}

// Blur removes focus, closing the options dropdown
func (m *Model[T]) Blur() tea.Cmd {
	m.FocusableBase.Blur()
	m.input.Blur()
	m.highlight, m.top = 0, 0
	return nil
}

// SetSize sets the total width. Height is derived from content.
func (m *Model[T]) SetSize(width, _ int) tea.Cmd {
	if width <= 0 {
		width = defaultWidth
	}
	m.width = width
	// borders, padding and the search glyph
	m.input.SetWidth(max(1, width-6))
	return nil
}

// Width returns the total width
func (m *Model[T]) Width() int {
	return m.width
}

// SetOffset tells the widget where its top-left corner is on screen so
// mouse clicks can be mapped onto it
func (m *Model[T]) SetOffset(x, y int) {
	m.offsetX, m.offsetY = x, y
}

// Close unmounts the widget. A pending fetch never fires afterwards.
func (m *Model[T]) Close() {
	m.debounce.Close()
	m.spinner.Stop()
	m.mounted = false
}

// Highlighted returns the index of the keyboard-highlighted row
func (m *Model[T]) Highlighted() int {
	return m.highlight
}

// DropdownOpen reports whether option rows are being shown
func (m *Model[T]) DropdownOpen() bool {
	return m.dropdownOpen()
}

// FetchPending reports whether a debounce timer is armed
func (m *Model[T]) FetchPending() bool {
	return m.debounce.Pending()
}

// KeyMap returns the active key bindings
func (m *Model[T]) KeyMap() KeyMap {
	return m.keyMap
}

func (m *Model[T]) dropdownOpen() bool {
	return !m.props.Loading && m.Focused()
}

func (m *Model[T]) selectRow(i int) {
	if i < 0 || i >= len(m.props.Options) {
		return
	}
	m.props.OnSelectOption(m.props.Options[i])
}

// sameOptions reports whether a and b are the same list: equal length over
// the same backing array
func sameOptions[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

func (m *Model[T]) moveHighlight(delta int) {
	n := len(m.props.Options)
	if n == 0 {
		return
	}
	m.highlight = (m.highlight + delta + n) % n
	m.scrollToHighlight()
}

func (m *Model[T]) clampHighlight() {
	n := len(m.props.Options)
	if m.highlight >= n {
		m.highlight = max(0, n-1)
	}
	m.scrollToHighlight()
}

func (m *Model[T]) scrollToHighlight() {
	if m.maxRows <= 0 {
		m.top = 0
		return
	}
	if m.highlight < m.top {
		m.top = m.highlight
	}
	if m.highlight >= m.top+m.maxRows {
		m.top = m.highlight - m.maxRows + 1
	}
	m.top = max(0, min(m.top, len(m.props.Options)-m.maxRows))
}
