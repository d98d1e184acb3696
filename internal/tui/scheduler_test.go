package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTeaScheduler(t *testing.T) {
	s := newTeaScheduler()
	assert.Nil(t, s.Drain())

	var fired []string
	s.Schedule(time.Millisecond, func() { fired = append(fired, "a") })
	s.Schedule(time.Millisecond, func() { fired = append(fired, "b") })
	assert.Equal(t, 2, s.Len())
	assert.NotNil(t, s.Drain())
	assert.Nil(t, s.Drain(), "drain empties the pending ticks")

	assert.True(t, s.Fire(2))
	assert.False(t, s.Fire(2), "callbacks run once")
	assert.False(t, s.Fire(99))
	assert.True(t, s.Fire(1))
	assert.Equal(t, []string{"b", "a"}, fired)
	assert.Equal(t, 0, s.Len())
}
