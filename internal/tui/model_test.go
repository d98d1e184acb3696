package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/the-truth-is-out-there/internal/coordinator"
	"github.com/Veraticus/the-truth-is-out-there/internal/dataset"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/testutil/records"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/components"
	tuitesting "github.com/Veraticus/the-truth-is-out-there/internal/tui/testing"
)

type fakeClipboard struct {
	err  error
	text string
}

func (f *fakeClipboard) write(s string) error {
	if f.err != nil {
		return f.err
	}
	f.text = s
	return nil
}

func newTestModel(t *testing.T, opts ...Option) (*Model, *fakeClipboard) {
	t.Helper()
	clip := &fakeClipboard{}
	opts = append([]Option{WithSize(120, 40), WithClipboard(clip.write)}, opts...)
	m, err := New(dataset.New(records.Fixture(records.FixtureSpread)), opts...)
	require.NoError(t, err)
	return m, clip
}

func send(m *Model, msgs ...any) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func focusOn(t *testing.T, m *Model, view model.ViewID) {
	t.Helper()
	for range m.panels {
		if m.Focused() == view {
			return
		}
		send(m, tuitesting.KeyTab())
	}
	require.Equal(t, view, m.Focused())
}

func TestNew_PublishesUnfilteredState(t *testing.T) {
	m, _ := newTestModel(t)

	snap := m.Coordinator().Snapshot()
	assert.Equal(t, coordinator.StateIdle, snap.State)
	assert.Equal(t, 6, snap.WorkingSet)
	assert.Equal(t, "6 of 6 sightings", m.filter.Status().Summary())
	assert.Len(t, m.geo.Points(), 6)
	assert.Len(t, m.category.Rows(), 5)
	assert.Equal(t, model.ViewMap, m.Focused())
}

func TestUpdate_FocusCycles(t *testing.T) {
	m, _ := newTestModel(t)

	send(m, tuitesting.KeyTab())
	assert.Equal(t, model.ViewTimeline, m.Focused())

	send(m, tuitesting.KeyShiftTab(), tuitesting.KeyShiftTab())
	assert.Equal(t, model.ViewDuration, m.Focused())
}

func TestUpdate_CommitBrushesImmediately(t *testing.T) {
	m, _ := newTestModel(t)
	focusOn(t, m, model.ViewCategory)

	send(m, tuitesting.KeyEnter())

	snap := m.Coordinator().Snapshot()
	assert.Equal(t, coordinator.StateBrushing, snap.State)
	assert.Equal(t, model.ViewCategory, snap.Source)
	assert.Equal(t, "shape cigar", snap.Selection)
	assert.Equal(t, 1, snap.WorkingSet)
	assert.Len(t, m.geo.Points(), 1)
	assert.Len(t, m.category.Rows(), 5, "source keeps its bars")
	assert.Equal(t, "1 of 6 sightings | category: shape cigar", m.filter.Status().Summary())
}

func TestUpdate_BrushMoveWaitsForQuietInterval(t *testing.T) {
	m, _ := newTestModel(t)
	focusOn(t, m, model.ViewCategory)

	_, cmd := m.Update(tuitesting.KeySpace())
	assert.NotNil(t, cmd, "a tick is scheduled")
	assert.Equal(t, coordinator.StateIdle, m.Coordinator().State())
	assert.True(t, m.Coordinator().PendingMove(model.ViewCategory))

	send(m, tuitesting.KeyRight())
	assert.Equal(t, coordinator.StateIdle, m.Coordinator().State())

	stale := fireMsg{id: m.sched.next - 1}
	send(m, stale)
	assert.Equal(t, coordinator.StateIdle, m.Coordinator().State(), "replaced move never applies")

	send(m, fireMsg{id: m.sched.next})
	snap := m.Coordinator().Snapshot()
	assert.Equal(t, coordinator.StateBrushing, snap.State)
	assert.Equal(t, "shape cigar,disk", snap.Selection)
	assert.Equal(t, 2, snap.WorkingSet)
}

func TestUpdate_EscClearsAndResetAll(t *testing.T) {
	m, _ := newTestModel(t)
	focusOn(t, m, model.ViewCategory)

	send(m, tuitesting.KeyEnter())
	require.Equal(t, coordinator.StateBrushing, m.Coordinator().State())
	send(m, tuitesting.KeyEsc())
	assert.Equal(t, coordinator.StateIdle, m.Coordinator().State())
	assert.Equal(t, 6, m.Coordinator().Snapshot().WorkingSet)

	send(m, tuitesting.KeyEnter())
	require.Equal(t, coordinator.StateBrushing, m.Coordinator().State())
	send(m, tuitesting.KeyPress("r"))
	assert.Equal(t, coordinator.StateIdle, m.Coordinator().State())
	assert.True(t, m.category.Brush().Empty())
}

func TestUpdate_CrossViewBrushClearsPrevious(t *testing.T) {
	m, _ := newTestModel(t)
	focusOn(t, m, model.ViewCategory)
	send(m, tuitesting.KeyEnter())
	require.False(t, m.category.Brush().Empty())

	focusOn(t, m, model.ViewTimeline)
	send(m, tuitesting.KeyEnter())

	snap := m.Coordinator().Snapshot()
	assert.Equal(t, model.ViewTimeline, snap.Source)
	assert.Equal(t, "year 1998", snap.Selection)
	assert.True(t, m.category.Brush().Empty(), "previous source lost its brush")
}

func TestUpdate_MapRectangle(t *testing.T) {
	m, _ := newTestModel(t)
	require.Equal(t, model.ViewMap, m.Focused())

	send(m, tuitesting.KeySpace())
	assert.True(t, m.geo.Cornered())
	for range 200 {
		send(m, tuitesting.KeyRight(), tuitesting.KeyDown())
	}
	send(m, tuitesting.KeyEnter())

	snap := m.Coordinator().Snapshot()
	assert.Equal(t, coordinator.StateBrushing, snap.State)
	assert.Equal(t, model.ViewMap, snap.Source)
	assert.Equal(t, 6, snap.WorkingSet)
}

func TestUpdate_MapCornerExpires(t *testing.T) {
	m, _ := newTestModel(t)

	send(m, tuitesting.KeySpace())
	require.True(t, m.geo.Cornered())

	send(m, fireMsg{id: m.sched.next})
	assert.False(t, m.geo.Cornered())

	send(m, tuitesting.KeyEnter())
	assert.Equal(t, coordinator.StateIdle, m.Coordinator().State())
}

func TestUpdate_TextFilter(t *testing.T) {
	m, _ := newTestModel(t)

	send(m, tuitesting.KeyPress("/"))
	require.True(t, m.filter.Focused())

	for _, msg := range tuitesting.Type("disk") {
		send(m, msg)
	}
	assert.Equal(t, "disk", m.Coordinator().Pattern())
	assert.Equal(t, 1, m.Coordinator().Snapshot().WorkingSet)

	send(m, tuitesting.KeyPress("q"))
	assert.False(t, m.quitting, "q is text while filtering")
	assert.Equal(t, "diskq", m.Coordinator().Pattern())

	send(m, tuitesting.KeyEnter())
	assert.False(t, m.filter.Focused())

	_, cmd := m.Update(tuitesting.KeyPress("q"))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestUpdate_ResetKeepsText(t *testing.T) {
	m, _ := newTestModel(t)
	send(m, tuitesting.KeyPress("/"))
	for _, msg := range tuitesting.Type("light") {
		send(m, msg)
	}
	send(m, tuitesting.KeyEsc(), tuitesting.KeyPress("r"))

	assert.Equal(t, "light", m.Coordinator().Pattern())
	assert.Equal(t, 3, m.Coordinator().Snapshot().WorkingSet)
}

func TestUpdate_CopySummary(t *testing.T) {
	m, clip := newTestModel(t)

	_, cmd := m.Update(tuitesting.KeyPress("y"))
	assert.NotNil(t, cmd)
	assert.True(t, strings.HasPrefix(clip.text, "6 of 6 sightings\n"))
	assert.Contains(t, clip.text, "cigar\t1")
	assert.Equal(t, "Copied summary to clipboard", m.Notice())

	send(m, clearNoticeMsg{id: m.noticeSeq - 1})
	assert.NotEmpty(t, m.Notice(), "stale clear is ignored")
	send(m, clearNoticeMsg{id: m.noticeSeq})
	assert.Empty(t, m.Notice())
}

func TestUpdate_CopyFailure(t *testing.T) {
	m, clip := newTestModel(t)
	clip.err = errors.New("no display")

	send(m, tuitesting.KeyPress("y"))
	assert.Equal(t, "Copy failed: no display", m.Notice())
}

func TestUpdate_ColorModeAndHelp(t *testing.T) {
	m, _ := newTestModel(t, WithColorBy(components.ColorByCategory))
	assert.Equal(t, components.ColorByCategory, m.geo.ColorMode())

	send(m, tuitesting.KeyPress("c"))
	assert.Equal(t, components.ColorByYear, m.geo.ColorMode())
	assert.Equal(t, "Map colored by year", m.Notice())

	send(m, tuitesting.KeyPress("?"))
	assert.True(t, m.help.ShowAll)
}

func TestView_Layouts(t *testing.T) {
	m, _ := newTestModel(t)

	out := tuitesting.StripANSI(m.View())
	assert.True(t, tuitesting.ContainsInOrder(out,
		"The Truth Is Out There", "6 of 6 sightings", "Map", "Sightings per year", "Month", "Hour of day", "Shape", "Duration"))

	send(m, tuitesting.WindowSize(60, 30))
	out = tuitesting.StripANSI(m.View())
	assert.Contains(t, out, "Map")
	assert.NotContains(t, out, "Sightings per year")
}

func TestRun_RejectsEmptyStore(t *testing.T) {
	err := Run(context.Background(), dataset.New(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truth import")
}
