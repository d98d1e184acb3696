package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/the-truth-is-out-there/internal/coordinator"
	tuitesting "github.com/Veraticus/the-truth-is-out-there/internal/tui/testing"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/themes"
)

func TestFilterBar_ReportsChanges(t *testing.T) {
	f := NewFilterBar(themes.Default)
	assert.False(t, f.Focused())

	changed, _ := f.Update(tuitesting.KeyPress("x"))
	assert.False(t, changed, "unfocused input ignores keys")

	f.Focus()
	assert.True(t, f.Focused())
	for _, msg := range tuitesting.Type("light") {
		changed, _ = f.Update(msg)
		assert.True(t, changed)
	}
	assert.Equal(t, "light", f.Value())

	changed, _ = f.Update(tuitesting.KeyLeft())
	assert.False(t, changed, "cursor movement keeps the text")

	f.Blur()
	assert.False(t, f.Focused())
}

func TestFilterBar_ShowsStatus(t *testing.T) {
	f := NewFilterBar(themes.Default)
	f.SetWidth(120)
	f.Published(coordinator.Snapshot{
		State:      coordinator.StateBrushing,
		Source:     "timeline",
		Selection:  "year 1998",
		WorkingSet: 1,
		Total:      6,
	})

	assert.True(t, f.Status().Brushing)
	out := tuitesting.StripANSI(f.View())
	assert.Contains(t, out, "1 of 6 sightings | timeline: year 1998")
}
