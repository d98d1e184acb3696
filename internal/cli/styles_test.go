package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHelpers(t *testing.T) {
	tests := []struct {
		format func(string) string
		name   string
		icon   string
	}{
		{name: "success", format: FormatSuccess, icon: SuccessIcon},
		{name: "error", format: FormatError, icon: ErrorIcon},
		{name: "warning", format: FormatWarning, icon: WarningIcon},
		{name: "info", format: FormatInfo, icon: InfoIcon},
		{name: "title", format: FormatTitle, icon: SaucerIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.format("imported 3 sightings")
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "imported 3 sightings")
		})
	}
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Summary", "3 of 5 sightings")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "3 of 5 sightings")
}
