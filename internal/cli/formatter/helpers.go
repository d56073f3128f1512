package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatUnits renders a quantity with thousands separators and at most one
// decimal place.
func FormatUnits(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	if math.IsInf(v, 0) {
		return "∞"
	}
	if v == math.Trunc(v) {
		return humanize.Comma(int64(v))
	}
	return humanize.FormatFloat("#,###.#", v)
}

// FormatDays renders a day count. Infinite values print as ∞.
func FormatDays(days float64) string {
	if math.IsInf(days, 1) {
		return "∞"
	}
	return FormatUnits(days)
}

// FormatINR renders an amount in rupees, e.g. ₹12,500.
func FormatINR(amount decimal.Decimal) string {
	return "₹" + humanize.Comma(amount.Round(0).IntPart())
}

// HumanTimestampFrom returns a relative timestamp such as "3h ago".
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006 15:04")
	}
}

// Truncate shortens s to max visible characters, adding an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 1 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func humanizeInt(n int) string {
	return humanize.Comma(int64(n))
}

func decimalFromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
