package components

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/the-truth-is-out-there/internal/coordinator"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/themes"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/viewmodel"
)

// FilterBar is the free-text description filter plus the status line. It
// observes the coordinator to show the current working set.
type FilterBar struct {
	theme  themes.Theme
	status viewmodel.Status
	input  textinput.Model
	meter  progress.Model
	width  int
}

// NewFilterBar creates an unfocused filter bar.
func NewFilterBar(theme themes.Theme) *FilterBar {
	input := textinput.New()
	input.Placeholder = "filter descriptions (regex)"
	input.Prompt = "/ "
	input.CharLimit = 200

	meter := progress.New(progress.WithSolidFill(string(theme.Primary)))
	meter.ShowPercentage = true
	meter.Width = 20

	return &FilterBar{theme: theme, input: input, meter: meter, width: 80}
}

// Published implements coordinator.Observer.
func (f *FilterBar) Published(s coordinator.Snapshot) {
	f.status = viewmodel.NewStatus(s)
}

// Status returns the last observed status.
func (f *FilterBar) Status() viewmodel.Status { return f.status }

// Focus starts text entry.
func (f *FilterBar) Focus() tea.Cmd { return f.input.Focus() }

// Blur ends text entry.
func (f *FilterBar) Blur() { f.input.Blur() }

// Focused reports whether text entry is active.
func (f *FilterBar) Focused() bool { return f.input.Focused() }

// Value returns the current pattern text.
func (f *FilterBar) Value() string { return f.input.Value() }

// SetValue replaces the pattern text.
func (f *FilterBar) SetValue(s string) { f.input.SetValue(s) }

// SetWidth sets the rendered width.
func (f *FilterBar) SetWidth(width int) {
	f.width = width
	f.input.Width = max(10, width/2)
	f.meter.Width = max(10, width/5)
}

// Update feeds a message to the input and reports whether the text
// changed.
func (f *FilterBar) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f.input.Value() != before, cmd
}

// View renders the input above the status line.
func (f *FilterBar) View() string {
	summary := f.theme.Normal.Render(f.status.Summary())
	if f.status.Filtered() {
		summary = f.theme.StatusInfo.Render(f.status.Summary())
	}
	status := lipgloss.JoinHorizontal(lipgloss.Top,
		f.meter.ViewAs(f.status.Percentage()), "  ", summary)
	return lipgloss.JoinVertical(lipgloss.Left, f.input.View(),
		lipgloss.NewStyle().MaxWidth(f.width).Render(status))
}
