package anim

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/billie-coop/typeahead/internal/tui/components/core"
	"github.com/billie-coop/typeahead/internal/tui/styles"
)

// SpinnerType defines different spinner animations
type SpinnerType int

const (
	SpinnerDots SpinnerType = iota
	SpinnerLine
	SpinnerCircle
	SpinnerSquare
	SpinnerGradient
)

var lastSpinnerID int64

// Spinner is an animated loading indicator. It only ticks between Start
// and Stop; restarting it never runs two tick chains at once.
type Spinner struct {
	Type  SpinnerType
	Label string

	id       int
	tag      int
	frame    int
	running  bool
	speed    time.Duration
	schedule core.Scheduler
}

// TickMsg advances a spinner by one frame
type TickMsg struct {
	ID   int
	tag  int
	Time time.Time
}

// NewSpinner creates a new spinner
func NewSpinner(spinnerType SpinnerType) *Spinner {
	return &Spinner{
		Type:     spinnerType,
		id:       int(atomic.AddInt64(&lastSpinnerID, 1)),
		speed:    80 * time.Millisecond,
		schedule: tea.Tick,
	}
}

// WithLabel sets the spinner label
func (s *Spinner) WithLabel(label string) *Spinner {
	s.Label = label
	return s
}

// WithSpeed sets the frame interval
func (s *Spinner) WithSpeed(speed time.Duration) *Spinner {
	if speed > 0 {
		s.speed = speed
	}
	return s
}

// WithScheduler replaces tea.Tick
func (s *Spinner) WithScheduler(schedule core.Scheduler) *Spinner {
	if schedule != nil {
		s.schedule = schedule
	}
	return s
}

// Start begins (or restarts) the animation
func (s *Spinner) Start() tea.Cmd {
	s.running = true
	s.tag++
	return s.tick()
}

// Stop ends the animation; the in-flight tick is dropped on arrival
func (s *Spinner) Stop() {
	s.running = false
	s.tag++
}

// Running reports whether the spinner is animating
func (s *Spinner) Running() bool {
	return s.running
}

// Frame returns the current frame index
func (s *Spinner) Frame() int {
	return s.frame
}

// Update handles spinner animation
func (s *Spinner) Update(msg tea.Msg) (*Spinner, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != s.id || tick.tag != s.tag || !s.running {
		return s, nil
	}
	s.frame++
	return s, s.tick()
}

// View renders the spinner
func (s *Spinner) View() string {
	frames := s.getFrames()
	currentFrame := frames[s.frame%len(frames)]

	if s.Type == SpinnerGradient {
		colors := styles.GetGradientColors(len([]rune(currentFrame)))
		coloredFrame := ""
		i := 0
		for _, ch := range currentFrame {
			style := lipgloss.NewStyle().Foreground(colors[i%len(colors)])
			coloredFrame += style.Render(string(ch))
			i++
		}
		currentFrame = coloredFrame
	} else {
		currentFrame = styles.RenderThemeGradient(currentFrame)
	}

	if s.Label != "" {
		theme := styles.CurrentTheme()
		label := theme.S().Subtle.Render(s.Label)
		return fmt.Sprintf("%s %s", currentFrame, label)
	}

	return currentFrame
}

// getFrames returns animation frames based on spinner type
func (s *Spinner) getFrames() []string {
	switch s.Type {
	case SpinnerDots:
		return []string{
			"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏",
		}
	case SpinnerLine:
		return []string{
			"-", "\\", "|", "/",
		}
	case SpinnerCircle:
		return []string{
			"◐", "◓", "◑", "◒",
		}
	case SpinnerSquare:
		return []string{
			"◰", "◳", "◲", "◱",
		}
	case SpinnerGradient:
		return []string{
			"█▁▁▁▁▁▁▁", "▁█▁▁▁▁▁▁", "▁▁█▁▁▁▁▁", "▁▁▁█▁▁▁▁",
			"▁▁▁▁█▁▁▁", "▁▁▁▁▁█▁▁", "▁▁▁▁▁▁█▁", "▁▁▁▁▁▁▁█",
		}
	default:
		return []string{" "}
	}
}

func (s *Spinner) tick() tea.Cmd {
	id, tag := s.id, s.tag
	return s.schedule(s.speed, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag, Time: t}
	})
}
