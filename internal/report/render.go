package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Veraticus/the-truth-is-out-there/internal/cli"
	"github.com/Veraticus/the-truth-is-out-there/internal/coordinator"
	"github.com/Veraticus/the-truth-is-out-there/internal/dimension"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
)

const (
	labelWidth = 14
	barWidth   = 30
	barGlyph   = "█"
)

// Headline is a one-line plain summary of a snapshot.
func Headline(s coordinator.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d sightings", s.WorkingSet, s.Total)
	if s.Selection != "" {
		fmt.Fprintf(&b, " | %s", s.Selection)
	}
	if s.Pattern != "" {
		fmt.Fprintf(&b, " | text %q", s.Pattern)
	}
	return b.String()
}

// Render writes every dimension's rows as a bar table, in dimension order.
func Render(w io.Writer, s coordinator.Snapshot, rows map[model.DimensionID][]model.AggregateRow) error {
	sections := []string{cli.FormatTitle(Headline(s))}

	for _, d := range dimension.All() {
		sections = append(sections, renderTable(d.Name, rows[d.ID]))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}

func renderTable(title string, rows []model.AggregateRow) string {
	lines := []string{cli.TableHeaderStyle.Render(title)}
	if len(rows) == 0 {
		lines = append(lines, cli.SubtleStyle.Render("no sightings"), "")
		return strings.Join(lines, "\n")
	}

	maxCount := 0
	for _, r := range rows {
		maxCount = max(maxCount, r.Count)
	}

	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s %s %d",
			cli.TableCellStyle.Render(FitLabel(r.Key.Label, labelWidth)),
			cli.BarStyle.Render(Bar(r.Count, maxCount, barWidth)),
			r.Count))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// FitLabel truncates or pads label to exactly width terminal cells.
func FitLabel(label string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(label, width, "…"), width)
}

// Bar returns a bar of up to width glyphs scaled to count/maxCount. Any
// non-zero count gets at least one glyph.
func Bar(count, maxCount, width int) string {
	if count <= 0 || maxCount <= 0 || width <= 0 {
		return ""
	}
	n := count * width / maxCount
	if n == 0 {
		n = 1
	}
	return strings.Repeat(barGlyph, n)
}

// PlainText renders the headline and each dimension's counts without
// styling, one "label<TAB>count" line per row.
func PlainText(s coordinator.Snapshot, rows map[model.DimensionID][]model.AggregateRow) string {
	var b strings.Builder
	b.WriteString(Headline(s))
	b.WriteString("\n")
	for _, d := range dimension.All() {
		fmt.Fprintf(&b, "\n%s\n", d.Name)
		for _, r := range rows[d.ID] {
			fmt.Fprintf(&b, "%s\t%d\n", r.Key.Label, r.Count)
		}
	}
	return b.String()
}
