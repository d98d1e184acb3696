// Package debounce provides a single-slot cancellable delay for brush-move
// debouncing on a single-threaded event loop.
package debounce

import "time"

// DefaultQuiet is the reference quiet interval for brush moves.
const DefaultQuiet = 300 * time.Millisecond

// Scheduler runs fire after a delay. Implementations must invoke fire on
// the goroutine that owns the event loop, never concurrently with it.
type Scheduler interface {
	Schedule(after time.Duration, fire func())
}

// Delay is a single pending callback. Starting a new one replaces any
// pending callback; a replaced or cancelled callback never runs.
type Delay struct {
	sched   Scheduler
	quiet   time.Duration
	gen     uint64
	pending bool
}

// NewDelay creates a delay that waits quiet before firing.
func NewDelay(sched Scheduler, quiet time.Duration) *Delay {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Delay{sched: sched, quiet: quiet}
}

// Start schedules fn after the quiet interval, cancelling any pending fn.
func (d *Delay) Start(fn func()) {
	d.gen++
	gen := d.gen
	d.pending = true

	d.sched.Schedule(d.quiet, func() {
		if gen != d.gen || !d.pending {
			return
		}
		d.pending = false
		fn()
	})
}

// Cancel drops the pending callback, if any.
func (d *Delay) Cancel() {
	d.gen++
	d.pending = false
}

// Pending reports whether a callback is waiting to fire.
func (d *Delay) Pending() bool {
	return d.pending
}

// Quiet returns the configured quiet interval.
func (d *Delay) Quiet() time.Duration {
	return d.quiet
}
