package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// heatShades go from no cover to the most cover in a heatmap.
var heatShades = []string{" ", "░", "▒", "▓", "█"}

// RenderBar renders a horizontal bar for value out of max, followed by the
// value, e.g. ████░░░░ 4.
func RenderBar(value, max int, width int, style lipgloss.Style) string {
	if width < 2 {
		width = 2
	}
	filled := 0
	if max > 0 && value > 0 {
		filled = value * width / max
		if filled == 0 {
			filled = 1
		}
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("%s %d", style.Render(bar), value)
}

// HeatCell renders one heatmap cell. Low cover is red, high cover green.
func HeatCell(value, max float64) string {
	if max <= 0 || value <= 0 {
		return StyleDim.Render("··")
	}
	ratio := value / max
	if ratio > 1 {
		ratio = 1
	}
	idx := int(ratio * float64(len(heatShades)-1))
	if idx == 0 {
		idx = 1
	}
	shade := strings.Repeat(heatShades[idx], 2)

	style := StyleGreen
	switch {
	case ratio < 0.33:
		style = StyleRed
	case ratio < 0.66:
		style = StyleYellow
	}
	return style.Render(shade)
}
