package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style for a stock status. Unknown statuses are dimmed.
func StatusStyle(s domain.StockStatus) lipgloss.Style {
	switch s {
	case domain.StatusCritical:
		return StyleRed
	case domain.StatusWarning:
		return StyleYellow
	case domain.StatusHealthy:
		return StyleGreen
	default:
		return StyleDim
	}
}

// AlertLevelStyle returns the style for an alert severity.
func AlertLevelStyle(l domain.AlertLevel) lipgloss.Style {
	switch l {
	case domain.AlertCritical:
		return StyleRed
	case domain.AlertWarning:
		return StyleYellow
	case domain.AlertOverstock:
		return StylePurple
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success renders a green check followed by text.
func Success(text string) string {
	return StyleGreen.Render("✔") + " " + text
}

// Info renders an informational line, used for empty or unavailable states.
func Info(text string) string {
	return StyleBlue.Render("ℹ") + " " + text
}
