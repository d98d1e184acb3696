package coordinator

import (
	"log/slog"
	"time"

	"github.com/Veraticus/the-truth-is-out-there/internal/debounce"
)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithScheduler sets the scheduler used for brush-move debouncing.
func WithScheduler(s debounce.Scheduler) Option {
	return func(c *Coordinator) {
		c.sched = s
	}
}

// WithQuietInterval sets the brush-move quiet interval.
func WithQuietInterval(d time.Duration) Option {
	return func(c *Coordinator) {
		c.quiet = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = l
	}
}
