package themes

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// UnknownShape colors shapes missing from ShapeColors.
const UnknownShape = lipgloss.Color("#808080")

// ShapeColors is the categorical map palette, one color per common shape.
var ShapeColors = map[string]lipgloss.Color{
	"light":     "#FFFF00", // yellow
	"circle":    "#0000FF", // blue
	"triangle":  "#008000", // green
	"unknown":   "#808080", // gray
	"sphere":    "#FF0000", // red
	"fireball":  "#FFA500", // orange
	"changing":  "#FFC0CB", // pink
	"chevron":   "#DEB887", // burlywood
	"cigar":     "#A52A2A", // brown
	"cone":      "#1E90FF", // dodgerblue
	"cross":     "#D2691E", // chocolate
	"cylinder":  "#DC143C", // crimson
	"diamond":   "#FFFAF0", // floralwhite
	"disk":      "#006400", // darkgreen
	"egg":       "#DCDCDC", // gainsboro
	"flash":     "#FFD700", // gold
	"formation": "#8B0000", // darkred
	"other":     "#C0C0C0", // silver
	"rectangle": "#808000", // olive
	"teardrop":  "#6495ED", // cornflowerblue
}

// ShapeColor returns the palette color for a shape.
func ShapeColor(shape string) lipgloss.Color {
	if c, ok := ShapeColors[shape]; ok {
		return c
	}
	return UnknownShape
}

// Ramp interpolates linearly from white at t=0 to blue at t=1. t is
// clamped; NaN maps to white.
func Ramp(t float64) lipgloss.Color {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	c := int(math.Round(255 * (1 - t)))
	return lipgloss.Color(fmt.Sprintf("#%02X%02XFF", c, c))
}

// RampScale maps v within [lo, hi] onto Ramp. A zero-width extent maps
// everything to the middle of the ramp.
func RampScale(lo, hi, v float64) lipgloss.Color {
	if hi == lo {
		return Ramp(0.5)
	}
	return Ramp((v - lo) / (hi - lo))
}
