package core

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// DefaultDebounce is the quiet period used when none is given
const DefaultDebounce = 700 * time.Millisecond

// Scheduler delivers the message built by fn after d. tea.Tick is the
// production scheduler; tests substitute one that hands the message back
// without sleeping.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// DebounceMsg is delivered when an armed debouncer's quiet period ends.
type DebounceMsg struct {
	ID   int
	Seq  int
	Time time.Time
}

var lastDebouncerID int64

func nextDebouncerID() int {
	return int(atomic.AddInt64(&lastDebouncerID, 1))
}

// Debouncer is a single-slot timer. Arming it supersedes whatever was
// pending; only the message from the latest arm is honoured.
//
// Bubble Tea has no way to stop a tea.Tick once issued, so cancellation
// is done by advancing seq: a superseded message still arrives but no
// longer matches.
type Debouncer struct {
	id       int
	seq      int
	delay    time.Duration
	pending  bool
	closed   bool
	schedule Scheduler
}

// DebounceOption configures a Debouncer
type DebounceOption func(*Debouncer)

// WithScheduler replaces tea.Tick
func WithScheduler(s Scheduler) DebounceOption {
	return func(d *Debouncer) {
		if s != nil {
			d.schedule = s
		}
	}
}

// NewDebouncer creates a debouncer with the given quiet period
func NewDebouncer(delay time.Duration, opts ...DebounceOption) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	d := &Debouncer{
		id:       nextDebouncerID(),
		delay:    delay,
		schedule: tea.Tick,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ID identifies this debouncer's messages
func (d *Debouncer) ID() int {
	return d.id
}

// Delay returns the quiet period
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Arm cancels any pending timer and starts a new one
func (d *Debouncer) Arm() tea.Cmd {
	if d.closed {
		return nil
	}
	d.seq++
	d.pending = true

	id, seq := d.id, d.seq
	return d.schedule(d.delay, func(t time.Time) tea.Msg {
		return DebounceMsg{ID: id, Seq: seq, Time: t}
	})
}

// Cancel drops the pending timer, if any
func (d *Debouncer) Cancel() {
	d.seq++
	d.pending = false
}

// Pending reports whether a timer is armed and has not fired
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Fired reports whether msg is the expiry of the current timer. It
// returns true at most once per Arm.
func (d *Debouncer) Fired(msg tea.Msg) bool {
	m, ok := msg.(DebounceMsg)
	if !ok || m.ID != d.id {
		return false
	}
	if d.closed || !d.pending || m.Seq != d.seq {
		return false
	}
	d.pending = false
	return true
}

// Close cancels the pending timer and refuses further arms
func (d *Debouncer) Close() {
	d.Cancel()
	d.closed = true
}

// Closed reports whether Close has been called
func (d *Debouncer) Closed() bool {
	return d.closed
}
