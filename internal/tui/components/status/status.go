package status

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/billie-coop/typeahead/internal/tui/styles"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// Message is a transient status bar message
type Message struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

// Component is a one-line status bar: a hint on the left and a transient
// message on the right that clears itself.
type Component struct {
	message    *Message
	width      int
	hint       string
	clearAfter time.Duration
	now        func() time.Time
}

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: 5 * time.Second,
		now:        time.Now,
	}
}

// clearMessageMsg clears the message set at timestamp, if still current
type clearMessageMsg struct {
	timestamp time.Time
}

// SetMessage shows a message and schedules its removal
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	stamp := c.now()
	c.message = &Message{
		Content:   content,
		Type:      msgType,
		Timestamp: stamp,
	}

	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: stamp}
	})
}

// ShowInfo shows an info message
func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, Info)
}

// ShowError shows an error message
func (c *Component) ShowError(message string) tea.Cmd {
	return c.SetMessage(message, Error)
}

// ShowSuccess shows a success message
func (c *Component) ShowSuccess(message string) tea.Cmd {
	return c.SetMessage(message, Success)
}

// Message returns the current message, or nil
func (c *Component) Message() *Message {
	return c.message
}

// SetHint sets the left-hand text
func (c *Component) SetHint(hint string) {
	c.hint = hint
}

// SetSize implements core.Sizeable
func (c *Component) SetSize(width, _ int) tea.Cmd {
	c.width = width
	return nil
}

// Update clears expired messages
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	if msg, ok := msg.(clearMessageMsg); ok {
		if c.message != nil && msg.timestamp.Equal(c.message.Timestamp) {
			c.message = nil
		}
	}
	return c, nil
}

// View renders the status bar
func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}

	theme := styles.CurrentTheme()
	available := max(0, c.width-2) // padding

	right := c.formatMessage()
	if lipgloss.Width(right) > available/2 {
		right = ansi.Truncate(right, available/2, "…")
	}

	left := c.hint
	room := available - lipgloss.Width(right) - 1
	if lipgloss.Width(left) > room {
		left = ansi.Truncate(left, max(0, room), "…")
	}

	gap := max(1, available-lipgloss.Width(left)-lipgloss.Width(right))
	content := left + strings.Repeat(" ", gap) + right

	return theme.S().StatusBar.Width(c.width).Render(content)
}

func (c *Component) formatMessage() string {
	if c.message == nil {
		return ""
	}

	s := styles.CurrentTheme().S()
	switch c.message.Type {
	case Success:
		return s.Success.Render(styles.CheckIcon + " " + c.message.Content)
	case Warning:
		return s.Warning.Render(styles.WarningIcon + " " + c.message.Content)
	case Error:
		return s.Error.Render(styles.ErrorIcon + " " + c.message.Content)
	default:
		return c.message.Content
	}
}
