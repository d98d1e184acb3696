package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Veraticus/the-truth-is-out-there/internal/tui/themes"
)

// eighths are the partial block glyphs, from one eighth to seven.
var eighths = []rune("▁▂▃▄▅▆▇")

// columnGlyph returns the glyph drawn at level (0 is the bottom row) of a
// column whose height is h eighths of a row.
func columnGlyph(h, level int) rune {
	cell := h - level*8
	switch {
	case cell >= 8:
		return '█'
	case cell <= 0:
		return ' '
	}
	return eighths[cell-1]
}

// scaledHeight converts count to eighths of rows out of a plot rows tall.
// Any non-zero count is at least one eighth.
func scaledHeight(count, maxCount, rows int) int {
	if count <= 0 || maxCount <= 0 {
		return 0
	}
	return max(1, count*rows*8/maxCount)
}

// run accumulates runes that share a style so a line renders with as few
// escape sequences as possible.
type run struct {
	b     strings.Builder
	buf   strings.Builder
	style *lipgloss.Style
}

func (r *run) add(style *lipgloss.Style, c rune) {
	if style != r.style {
		r.flush()
		r.style = style
	}
	r.buf.WriteRune(c)
}

func (r *run) flush() {
	if r.buf.Len() == 0 {
		return
	}
	if r.style == nil {
		r.b.WriteString(r.buf.String())
	} else {
		r.b.WriteString(r.style.Render(r.buf.String()))
	}
	r.buf.Reset()
}

func (r *run) String() string {
	r.flush()
	return r.b.String()
}

// panel frames a body with a title and a readout line.
func panel(theme themes.Theme, title, body, readout string, focused bool) string {
	style := theme.Panel
	if focused {
		style = theme.FocusedPanel
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(title),
		body,
		theme.Faint.Render(readout),
	))
}

// innerSize returns the content area of a panel drawn in width x height
// cells, less the title and readout lines.
func innerSize(theme themes.Theme, width, height int) (int, int) {
	w := width - theme.Panel.GetHorizontalFrameSize()
	h := height - theme.Panel.GetVerticalFrameSize() - 2
	return max(1, w), max(1, h)
}

// fit truncates s to width cells.
func fit(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}
