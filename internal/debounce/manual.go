package debounce

import (
	"sort"
	"time"
)

// ManualScheduler is a deterministic Scheduler driven by Advance. It is
// used by tests and by headless runs that have no event loop.
type ManualScheduler struct {
	queue []scheduled
	now   time.Duration
	seq   int
}

type scheduled struct {
	fire func()
	at   time.Duration
	seq  int
}

// NewManualScheduler creates a scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule queues fire to run once the clock passes after.
func (m *ManualScheduler) Schedule(after time.Duration, fire func()) {
	m.seq++
	m.queue = append(m.queue, scheduled{at: m.now + after, seq: m.seq, fire: fire})
}

// Advance moves the clock forward and runs every callback that became due,
// in deadline order.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.runUntil(m.now + d)
}

// Flush runs every queued callback regardless of deadline.
func (m *ManualScheduler) Flush() {
	for len(m.queue) > 0 {
		last := m.now
		for _, s := range m.queue {
			if s.at > last {
				last = s.at
			}
		}
		m.runUntil(last)
	}
}

// Len returns the number of queued callbacks, including stale ones.
func (m *ManualScheduler) Len() int {
	return len(m.queue)
}

// Now returns the scheduler's clock.
func (m *ManualScheduler) Now() time.Duration {
	return m.now
}

func (m *ManualScheduler) runUntil(until time.Duration) {
	for {
		sort.SliceStable(m.queue, func(i, j int) bool {
			if m.queue[i].at == m.queue[j].at {
				return m.queue[i].seq < m.queue[j].seq
			}
			return m.queue[i].at < m.queue[j].at
		})

		if len(m.queue) == 0 || m.queue[0].at > until {
			break
		}

		next := m.queue[0]
		m.queue = m.queue[1:]
		m.now = next.at
		next.fire()
	}
	m.now = until
}

// Immediate is a Scheduler without a clock: it fires right away. Moves are
// then applied as they arrive, which suits headless runs.
type Immediate struct{}

// Schedule calls fire immediately.
func (Immediate) Schedule(_ time.Duration, fire func()) {
	fire()
}
