package autocomplete

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billie-coop/typeahead/internal/tui/components/core/coretest"
)

// harness plays the parent component: it owns the text, options and
// loading flag and pushes them back into the widget after every message.
type harness struct {
	t       *testing.T
	m       *Model[string]
	clock   *coretest.Clock
	value   string
	options []string
	loading bool

	changes  []string
	selected []string
	fetches  int
	// when set, OnInputChange is recorded but not applied
	rejectEdits bool
}

func newHarness(t *testing.T, opts ...Option) *harness {
	h := &harness{t: t, clock: coretest.NewClock()}
	opts = append([]Option{WithScheduler(h.clock.Schedule), WithWidth(30)}, opts...)
	h.m = New(h.props(), opts...)
	h.m.Init()
	return h
}

func (h *harness) props() Props[string] {
	return Props[string]{
		Placeholder: "Search fruit",
		Options:     h.options,
		InputValue:  h.value,
		Loading:     h.loading,
		OnInputChange: func(s string) {
			h.changes = append(h.changes, s)
			if !h.rejectEdits {
				h.value = s
			}
		},
		OnSelectOption: func(s string) {
			h.selected = append(h.selected, s)
		},
		GetOptionView: func(s string) string { return s },
		FetchOptions: func() tea.Cmd {
			h.fetches++
			return nil
		},
	}
}

func (h *harness) send(msg tea.Msg) {
	h.m.Update(msg)
	h.sync()
}

func (h *harness) sync() {
	h.m.SetProps(h.props())
}

func (h *harness) advance(d time.Duration) {
	for _, msg := range h.clock.Advance(d) {
		h.send(msg)
	}
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func (h *harness) view() string {
	return ansi.Strip(h.m.View())
}

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func TestMount_FetchesAfterQuietPeriod(t *testing.T) {
	h := newHarness(t)

	h.advance(699 * time.Millisecond)
	assert.Equal(t, 0, h.fetches)
	h.advance(time.Millisecond)
	assert.Equal(t, 1, h.fetches)

	h.advance(5 * time.Second)
	assert.Equal(t, 1, h.fetches, "a fired timer is discarded")
}

func TestTyping_DebouncesFetch(t *testing.T) {
	h := newHarness(t)
	h.m.Focus()

	h.typeText("a")
	h.advance(200 * time.Millisecond)
	h.typeText("p")
	h.advance(200 * time.Millisecond)
	h.typeText("p")

	h.advance(699 * time.Millisecond)
	assert.Equal(t, 0, h.fetches)

	h.advance(time.Millisecond)
	assert.Equal(t, 1, h.fetches)
	assert.Equal(t, "app", h.value)
}

func TestTyping_OnInputChangePerKeystroke(t *testing.T) {
	h := newHarness(t)
	h.m.Focus()

	h.typeText("Ap")
	assert.Equal(t, []string{"A", "Ap"}, h.changes)

	h.send(press(tea.KeyBackspace))
	assert.Equal(t, []string{"A", "Ap", "A"}, h.changes)

	// Whitespace is passed through untouched
	h.typeText(" ")
	assert.Equal(t, "A ", h.changes[len(h.changes)-1])
	assert.Equal(t, 0, h.fetches, "callbacks are not debounced, fetches are")
}

func TestTyping_IgnoredWhenUnfocused(t *testing.T) {
	h := newHarness(t)
	h.typeText("x")
	assert.Empty(t, h.changes)
}

func TestClose_SuppressesPendingFetch(t *testing.T) {
	h := newHarness(t)
	h.m.Focus()
	h.typeText("ap")
	h.advance(300 * time.Millisecond)

	h.m.Close()
	h.advance(time.Second)
	assert.Equal(t, 0, h.fetches)
	assert.False(t, h.m.FetchPending())

	// Props changes after unmount schedule nothing
	h.value = "apple"
	assert.Nil(t, h.m.SetProps(h.props()))
	assert.Equal(t, 0, h.clock.Pending())
}

func TestSetProps_SameValueDoesNotRearm(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 1, h.clock.Pending())

	h.options = []string{"Apple"}
	h.sync()
	h.loading = false
	h.sync()
	assert.Equal(t, 1, h.clock.Pending())

	h.value = "a"
	h.sync()
	assert.Equal(t, 2, h.clock.Pending())
}

func TestFetchOptions_CommandIsReturned(t *testing.T) {
	clock := coretest.NewClock()
	type loaded struct{}
	m := New(Props[string]{
		OnInputChange:  func(string) {},
		OnSelectOption: func(string) {},
		GetOptionView:  func(s string) string { return s },
		FetchOptions: func() tea.Cmd {
			return func() tea.Msg { return loaded{} }
		},
	}, WithScheduler(clock.Schedule))
	m.Init()

	msgs := clock.Advance(700 * time.Millisecond)
	require.Len(t, msgs, 1)
	_, cmd := m.Update(msgs[0])
	require.NotNil(t, cmd)
	assert.Equal(t, loaded{}, cmd())
}

func TestView_FocusedShowsOptionsInOrder(t *testing.T) {
	h := newHarness(t)
	h.value = "Ap"
	h.options = []string{"Apple", "Apricot"}
	h.sync()
	h.m.Focus()

	out := h.view()
	assert.Contains(t, out, "Ap")
	assert.Equal(t, 1, strings.Count(out, "Apple"))
	assert.Equal(t, 1, strings.Count(out, "Apricot"))
	assert.Less(t, strings.Index(out, "Apple"), strings.Index(out, "Apricot"))
	assert.True(t, h.m.DropdownOpen())
}

func TestClickRow_SelectsUnmodifiedOption(t *testing.T) {
	h := newHarness(t)
	h.value = "Ap"
	h.options = []string{"Apple", "Apricot"}
	h.sync()
	h.m.Focus()

	// Rows start right below the three-line input box
	h.send(click(2, inputHeight+1))
	assert.Equal(t, []string{"Apricot"}, h.selected)

	h.send(click(2, inputHeight))
	assert.Equal(t, []string{"Apricot", "Apple"}, h.selected)
	assert.Equal(t, "Ap", h.value, "selection leaves the input to the caller")
}

func TestClickRow_RespectsOffset(t *testing.T) {
	h := newHarness(t)
	h.options = []string{"Apple", "Apricot"}
	h.sync()
	h.m.SetOffset(10, 5)
	h.m.Focus()

	h.send(click(12, 5+inputHeight))
	assert.Equal(t, []string{"Apple"}, h.selected)
}

func TestKeyboard_HighlightAndSelect(t *testing.T) {
	h := newHarness(t)
	h.options = []string{"Apple", "Apricot", "Avocado"}
	h.sync()
	h.m.Focus()

	h.send(press(tea.KeyDown))
	h.send(press(tea.KeyDown))
	assert.Equal(t, 2, h.m.Highlighted())

	h.send(press(tea.KeyDown))
	assert.Equal(t, 0, h.m.Highlighted(), "highlight wraps")

	h.send(press(tea.KeyUp))
	h.send(press(tea.KeyEnter))
	assert.Equal(t, []string{"Avocado"}, h.selected)
	assert.Empty(t, h.changes, "navigation keys do not edit the text")
}

func TestLoading_HidesOptionsRegardlessOfFocus(t *testing.T) {
	h := newHarness(t)
	h.options = []string{"Apple", "Apricot"}
	h.loading = true
	h.sync()

	for _, focused := range []bool{false, true} {
		if focused {
			h.m.Focus()
		}
		out := h.view()
		assert.NotContains(t, out, "Apple")
		assert.NotContains(t, out, "Apricot")
		assert.Contains(t, out, "▁", "loading animation is shown")
		assert.False(t, h.m.DropdownOpen())
	}

	// Clicking where a row would be selects nothing while loading
	h.send(click(2, inputHeight))
	assert.Empty(t, h.selected)
}

func TestLoading_AnimatesAndStops(t *testing.T) {
	h := newHarness(t)
	h.loading = true
	h.sync()
	assert.True(t, h.m.spinner.Running())

	h.advance(80 * time.Millisecond)
	assert.Equal(t, 1, h.m.spinner.Frame())

	h.loading = false
	h.sync()
	assert.False(t, h.m.spinner.Running())
}

func TestBlur_HidesDropdown(t *testing.T) {
	h := newHarness(t)
	h.options = []string{"Apple"}
	h.sync()

	assert.NotContains(t, h.view(), "Apple", "unfocused: nothing below the input")

	h.m.Focus()
	assert.Contains(t, h.view(), "Apple")

	h.send(press(tea.KeyEscape))
	assert.False(t, h.m.Focused())
	assert.NotContains(t, h.view(), "Apple")
}

func TestClick_FocusesAndBlurs(t *testing.T) {
	h := newHarness(t)
	h.options = []string{"Apple"}
	h.sync()

	h.send(click(3, 1))
	assert.True(t, h.m.Focused())

	h.send(click(3, 20))
	assert.False(t, h.m.Focused())

	h.send(click(3, 1))
	h.send(click(100, 1))
	assert.False(t, h.m.Focused(), "clicks right of the widget blur it")
	assert.Empty(t, h.selected)
}

func TestView_ShowsCallerValue(t *testing.T) {
	h := newHarness(t)
	h.value = "pear"
	h.sync()
	h.rejectEdits = true
	h.m.Focus()

	h.typeText("s")
	assert.Equal(t, []string{"pears"}, h.changes)
	assert.Contains(t, h.view(), "pear")
	assert.NotContains(t, h.view(), "pears")
}

func TestView_PlaceholderAndIcon(t *testing.T) {
	h := newHarness(t)
	out := h.view()
	assert.Contains(t, out, "Search")
	assert.Contains(t, out, "⌕")
}

func TestMaxRows_WindowFollowsHighlight(t *testing.T) {
	h := newHarness(t, WithMaxRows(2))
	h.options = []string{"Apple", "Apricot", "Avocado"}
	h.sync()
	h.m.Focus()

	out := h.view()
	assert.Contains(t, out, "Apple")
	assert.NotContains(t, out, "Avocado")

	h.send(press(tea.KeyDown))
	h.send(press(tea.KeyDown))
	out = h.view()
	assert.NotContains(t, out, "Apple")
	assert.Contains(t, out, "Avocado")

	// The first visible row is now Apricot
	h.send(click(2, inputHeight))
	assert.Equal(t, []string{"Apricot"}, h.selected)
}

func TestOptionsChange_ResetsHighlight(t *testing.T) {
	h := newHarness(t)
	h.options = []string{"Apple", "Apricot", "Avocado"}
	h.sync()
	h.m.Focus()
	h.send(press(tea.KeyDown))
	h.send(press(tea.KeyDown))

	h.options = []string{"Banana"}
	h.sync()
	assert.Equal(t, 0, h.m.Highlighted())
}

func TestOptionsChange_SameLengthResetsHighlight(t *testing.T) {
	h := newHarness(t)
	h.options = []string{"Apple", "Apricot"}
	h.sync()
	h.m.Focus()
	h.send(press(tea.KeyDown))
	require.Equal(t, 1, h.m.Highlighted())

	// Re-rendering the same list keeps the cursor
	h.sync()
	assert.Equal(t, 1, h.m.Highlighted())

	h.options = []string{"Banana", "Blueberry"}
	h.sync()
	assert.Equal(t, 0, h.m.Highlighted())

	h.send(press(tea.KeyEnter))
	assert.Equal(t, []string{"Banana"}, h.selected)
}

func TestSetProps_LoadingBeforeMountDoesNotTick(t *testing.T) {
	clock := coretest.NewClock()
	var p Props[string]
	p.Loading = true
	m := New(p, WithScheduler(clock.Schedule))

	m.SetProps(p)
	assert.False(t, m.spinner.Running())
	assert.Equal(t, 0, clock.Pending())

	m.Init()
	assert.True(t, m.spinner.Running())
}
