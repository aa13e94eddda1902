// Package coretest provides a manual clock for driving core.Debouncer and
// other tea.Tick users in tests.
package coretest

import (
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

type timer struct {
	at  time.Time
	seq int
	fn  func(time.Time) tea.Msg
}

// Clock records every scheduled tick and releases them as time advances.
// Like tea.Tick, superseded ticks are still delivered; it is up to the
// receiver to ignore them.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []timer
}

// NewClock starts at an arbitrary fixed instant
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

// Schedule matches core.Scheduler. The tick is registered at call time;
// the returned command yields nil.
func (c *Clock) Schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.timers = append(c.timers, timer{at: c.now.Add(d), seq: c.seq, fn: fn})
	return func() tea.Msg { return nil }
}

// Now returns the current fake time
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of ticks not yet delivered
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves time forward and returns the messages of every tick that
// came due, in deadline order.
func (c *Clock) Advance(d time.Duration) []tea.Msg {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due, rest []timer
	for _, t := range c.timers {
		if !t.at.After(c.now) {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	c.timers = rest
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].at.Equal(due[j].at) {
			return due[i].seq < due[j].seq
		}
		return due[i].at.Before(due[j].at)
	})

	msgs := make([]tea.Msg, 0, len(due))
	for _, t := range due {
		msgs = append(msgs, t.fn(t.at))
	}
	return msgs
}
