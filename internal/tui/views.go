package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	chromeLines = 6 // title, filter input, status, help, notice, spacing
	minRowLines = 6
	compactAt   = 80
)

// layout sizes every panel for the current terminal.
func (m *Model) layout() {
	usable := max(2*minRowLines, m.height-chromeLines)
	top := usable * 3 / 5
	bottom := usable - top

	m.filter.SetWidth(m.width)

	if m.width < compactAt {
		for _, p := range m.panels {
			p.SetSize(m.width, max(minRowLines, usable/3))
		}
		return
	}

	left := m.width / 2
	m.geo.SetSize(left, top)
	m.timeline.SetSize(m.width-left, top)

	quarter := m.width / 4
	m.month.SetSize(quarter, bottom)
	m.hour.SetSize(quarter, bottom)
	m.category.SetSize(quarter, bottom)
	m.duration.SetSize(m.width-3*quarter, bottom)
}

// View renders the dashboard.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render("🛸 The Truth Is Out There"),
		m.filter.View(),
		m.renderPanels(),
		m.renderNotice(),
		m.help.View(m.keymap),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderPanels() string {
	views := make([]string, len(m.panels))
	for i, p := range m.panels {
		views[i] = p.View(i == m.focus)
	}

	if m.width < compactAt {
		// Only the focused panel fits.
		return views[m.focus]
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, views[0], views[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, views[2:]...)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (m *Model) renderNotice() string {
	if m.notice == "" {
		return ""
	}
	switch m.kind {
	case noticeSuccess:
		return m.theme.StatusSuccess.Render("✓ " + m.notice)
	case noticeError:
		return m.theme.StatusWarning.Render("× " + m.notice)
	}
	return m.theme.StatusInfo.Render("ℹ " + m.notice)
}
