// Package clock provides a Bubble Tea component that shows the current time,
// refreshed on a fixed interval while running.
package clock

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is how often a running clock refreshes.
const DefaultInterval = time.Second

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg asks a clock to refresh. Ticks addressed to another clock, or
// scheduled before the latest Start or Stop, are ignored.
type TickMsg struct {
	ID   int
	tag  int
	Time time.Time
}

// Model is the clock component. Start arms the tick chain and Stop cancels
// it; only one chain is live at a time.
type Model struct {
	id       int
	tag      int
	running  bool
	interval time.Duration
	format   Formatter
	now      func() time.Time
	text     string
}

// New returns a stopped clock. A non-positive interval uses DefaultInterval.
func New(interval time.Duration, format Formatter) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	m := Model{
		id:       nextID(),
		interval: interval,
		format:   format,
		now:      time.Now,
	}
	m.text = m.format.Format(m.now())
	return m
}

// ID identifies this clock's ticks.
func (m Model) ID() int {
	return m.id
}

// Running reports whether a tick chain is armed.
func (m Model) Running() bool {
	return m.running
}

// Interval returns the refresh period.
func (m Model) Interval() time.Duration {
	return m.interval
}

// Start refreshes the display and arms a new tick chain, replacing any chain
// already running.
func (m *Model) Start() tea.Cmd {
	m.tag++
	m.running = true
	m.text = m.format.Format(m.now())
	return m.tick()
}

// Stop cancels the tick chain. Pending ticks are dropped when they arrive.
func (m *Model) Stop() {
	m.tag++
	m.running = false
}

// Update handles TickMsg for this clock.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || tick.tag != m.tag || !m.running {
		return m, nil
	}
	m.text = m.format.Format(tick.Time)
	return m, m.tick()
}

// View returns the formatted time.
func (m Model) View() string {
	return m.text
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, tag: tag, Time: t}
	})
}
