// Package tui is the interactive dashboard: six linked panels over one
// coordinator, driven by bubbletea.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/the-truth-is-out-there/internal/coordinator"
	"github.com/Veraticus/the-truth-is-out-there/internal/dataset"
	"github.com/Veraticus/the-truth-is-out-there/internal/dimension"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/report"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/components"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/themes"
)

const fastStep = 10

// Model holds the dashboard state.
type Model struct {
	theme     themes.Theme
	config    Config
	coord     *coordinator.Coordinator
	sched     *teaScheduler
	geo       *components.GeoMap
	timeline  *components.Timeline
	month     *components.BarChart
	hour      *components.BarChart
	category  *components.BarChart
	duration  *components.BarChart
	filter    *components.FilterBar
	notice    string
	panels    []components.Brushable
	keymap    KeyMap
	help      help.Model
	noticeSeq int
	width     int
	height    int
	focus     int
	kind      noticeKind
	quitting  bool
}

// New builds the dashboard over store and publishes the unfiltered state.
func New(store *dataset.Store, opts ...Option) (*Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sched := newTeaScheduler()
	m := &Model{
		config: cfg,
		theme:  cfg.Theme,
		sched:  sched,
		keymap: DefaultKeyMap(),
		help:   help.New(),
		width:  cfg.Width,
		height: cfg.Height,
		coord: coordinator.New(store,
			coordinator.WithScheduler(sched),
			coordinator.WithQuietInterval(cfg.Debounce),
			coordinator.WithLogger(cfg.Logger)),
	}

	m.geo = components.NewGeoMap(model.ViewMap, cfg.Theme, sched, cfg.AnchorTimeout)
	m.geo.SetColorMode(cfg.ColorBy)
	m.timeline = components.NewTimeline(model.ViewTimeline, cfg.Theme)
	m.month = components.NewBarChart(model.ViewMonth, dimension.Month, cfg.Theme)
	m.hour = components.NewBarChart(model.ViewHour, dimension.HourOfDay, cfg.Theme)
	m.category = components.NewBarChart(model.ViewCategory, dimension.Category, cfg.Theme)
	m.duration = components.NewBarChart(model.ViewDuration, dimension.DurationBucket, cfg.Theme)
	m.filter = components.NewFilterBar(cfg.Theme)

	m.panels = []components.Brushable{m.geo, m.timeline, m.month, m.hour, m.category, m.duration}
	for _, p := range m.panels {
		if err := m.coord.Register(p); err != nil {
			return nil, fmt.Errorf("failed to register %s panel: %w", p.ID(), err)
		}
	}
	m.coord.Observe(m.filter)

	m.layout()
	m.coord.Start()
	return m, nil
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case fireMsg:
		m.sched.Fire(msg.id)

	case clearNoticeMsg:
		if msg.id == m.noticeSeq {
			m.notice = ""
		}

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	}

	cmds = append(cmds, m.sched.Drain())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.filter.Focused() {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keymap.Focus):
		m.focus = (m.focus + 1) % len(m.panels)
	case key.Matches(msg, m.keymap.PrevFocus):
		m.focus = (m.focus + len(m.panels) - 1) % len(m.panels)
	case key.Matches(msg, m.keymap.Filter):
		return m.filter.Focus()
	case key.Matches(msg, m.keymap.Reset):
		m.coord.ResetAll()
	case key.Matches(msg, m.keymap.ColorMode):
		mode := m.geo.CycleColor()
		return m.startNotice(fmt.Sprintf("Map colored by %s", mode), noticeInfo)
	case key.Matches(msg, m.keymap.Copy):
		return m.copySummary()
	case key.Matches(msg, m.keymap.FastLeft):
		m.apply(m.focused().Move(-fastStep, 0))
	case key.Matches(msg, m.keymap.FastRight):
		m.apply(m.focused().Move(fastStep, 0))
	case key.Matches(msg, m.keymap.Left):
		m.apply(m.focused().Move(-1, 0))
	case key.Matches(msg, m.keymap.Right):
		m.apply(m.focused().Move(1, 0))
	case key.Matches(msg, m.keymap.Up):
		m.apply(m.focused().Move(0, -1))
	case key.Matches(msg, m.keymap.Down):
		m.apply(m.focused().Move(0, 1))
	case key.Matches(msg, m.keymap.Anchor):
		m.apply(m.focused().Anchor())
	case key.Matches(msg, m.keymap.Commit):
		m.apply(m.focused().Commit())
	case key.Matches(msg, m.keymap.Clear):
		m.apply(m.focused().Cancel())
	}
	return nil
}

// handleFilterKey routes keys to the text input; Esc and Enter leave it.
func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keymap.Clear) || key.Matches(msg, m.keymap.Commit) {
		m.filter.Blur()
		return nil
	}

	changed, cmd := m.filter.Update(msg)
	if changed {
		m.coord.SetTextFilter(m.filter.Value())
	}
	return cmd
}

// apply forwards a panel gesture to the coordinator.
func (m *Model) apply(g components.Gesture) {
	source := m.focused().ID()
	switch g.Kind {
	case components.GestureMove:
		m.coord.BrushMove(source, g.Selection)
	case components.GestureEnd:
		m.coord.BrushEnd(source, g.Selection)
	case components.GestureClear:
		m.coord.SelectionCleared(source)
	}
}

func (m *Model) copySummary() tea.Cmd {
	rows := make(map[model.DimensionID][]model.AggregateRow)
	for _, d := range dimension.All() {
		rows[d.ID] = m.coord.Aggregates(d.ID)
	}

	if err := m.config.Clipboard(report.PlainText(m.coord.Snapshot(), rows)); err != nil {
		m.config.Logger.Warn("Failed to copy summary", "error", err)
		return m.startNotice("Copy failed: "+err.Error(), noticeError)
	}
	return m.startNotice("Copied summary to clipboard", noticeSuccess)
}

func (m *Model) startNotice(msg string, kind noticeKind) tea.Cmd {
	m.notice = msg
	m.kind = kind
	m.noticeSeq++
	id := m.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

func (m *Model) focused() components.Brushable {
	return m.panels[m.focus]
}

// Coordinator returns the dashboard's coordinator.
func (m *Model) Coordinator() *coordinator.Coordinator { return m.coord }

// Focused returns the ID of the focused panel.
func (m *Model) Focused() model.ViewID { return m.focused().ID() }

// Notice returns the transient message, if any.
func (m *Model) Notice() string { return m.notice }
