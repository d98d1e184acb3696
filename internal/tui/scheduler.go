package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fireMsg delivers a scheduled callback back to the event loop.
type fireMsg struct {
	id uint64
}

// teaScheduler implements debounce.Scheduler on top of tea.Tick. Callbacks
// run inside Update, so the coordinator only ever sees the program's
// goroutine.
type teaScheduler struct {
	fns     map[uint64]func()
	pending []tea.Cmd
	next    uint64
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{fns: make(map[uint64]func())}
}

// Schedule implements debounce.Scheduler.
func (s *teaScheduler) Schedule(after time.Duration, fire func()) {
	s.next++
	id := s.next
	s.fns[id] = fire
	s.pending = append(s.pending, tea.Tick(after, func(time.Time) tea.Msg {
		return fireMsg{id: id}
	}))
}

// Drain returns the ticks scheduled since the last call.
func (s *teaScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Fire runs and forgets the callback for id. Unknown ids are ignored.
func (s *teaScheduler) Fire(id uint64) bool {
	fn, ok := s.fns[id]
	if !ok {
		return false
	}
	delete(s.fns, id)
	fn()
	return true
}

// Len returns how many callbacks are outstanding.
func (s *teaScheduler) Len() int { return len(s.fns) }
