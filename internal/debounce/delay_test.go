package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDelay_FiresAfterQuietInterval(t *testing.T) {
	sched := NewManualScheduler()
	d := NewDelay(sched, 300*time.Millisecond)

	fired := 0
	d.Start(func() { fired++ })
	assert.True(t, d.Pending())

	sched.Advance(299 * time.Millisecond)
	assert.Equal(t, 0, fired)

	sched.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.False(t, d.Pending())
}

func TestDelay_RestartCancelsPending(t *testing.T) {
	sched := NewManualScheduler()
	d := NewDelay(sched, 300*time.Millisecond)

	var got []int
	for i := 1; i <= 5; i++ {
		i := i
		d.Start(func() { got = append(got, i) })
		sched.Advance(100 * time.Millisecond)
	}
	assert.Empty(t, got, "moves inside the quiet interval never fire")

	sched.Advance(300 * time.Millisecond)
	assert.Equal(t, []int{5}, got, "only the last move fires")
}

func TestDelay_Cancel(t *testing.T) {
	sched := NewManualScheduler()
	d := NewDelay(sched, 0)
	assert.Equal(t, DefaultQuiet, d.Quiet())

	fired := false
	d.Start(func() { fired = true })
	d.Cancel()
	assert.False(t, d.Pending())

	sched.Flush()
	assert.False(t, fired)
}

func TestDelay_IndependentSlots(t *testing.T) {
	sched := NewManualScheduler()
	a := NewDelay(sched, 300*time.Millisecond)
	b := NewDelay(sched, 300*time.Millisecond)

	var order []string
	a.Start(func() { order = append(order, "a") })
	sched.Advance(100 * time.Millisecond)
	b.Start(func() { order = append(order, "b") })
	a.Cancel()

	sched.Flush()
	assert.Equal(t, []string{"b"}, order)
}

func TestManualScheduler_Ordering(t *testing.T) {
	sched := NewManualScheduler()

	var order []string
	sched.Schedule(20*time.Millisecond, func() { order = append(order, "late") })
	sched.Schedule(10*time.Millisecond, func() { order = append(order, "early") })
	sched.Schedule(10*time.Millisecond, func() { order = append(order, "early-second") })
	assert.Equal(t, 3, sched.Len())

	sched.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"early", "early-second"}, order)
	assert.Equal(t, 15*time.Millisecond, sched.Now())

	sched.Flush()
	assert.Equal(t, []string{"early", "early-second", "late"}, order)
	assert.Equal(t, 0, sched.Len())
}

func TestManualScheduler_CallbackSchedulesMore(t *testing.T) {
	sched := NewManualScheduler()

	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			sched.Schedule(10*time.Millisecond, tick)
		}
	}
	sched.Schedule(10*time.Millisecond, tick)

	sched.Advance(100 * time.Millisecond)
	assert.Equal(t, 3, count)
}

func TestImmediate(t *testing.T) {
	d := NewDelay(Immediate{}, time.Second)

	fired := 0
	d.Start(func() { fired++ })
	assert.Equal(t, 1, fired)
	assert.False(t, d.Pending())
}
