package formatter

import (
	"strings"

	"github.com/alexanderramin/carestock/internal/domain"
)

// FormatPreferences renders the current alert preferences.
func FormatPreferences(p domain.AlertPreferences) string {
	levels := make([]string, len(p.Levels))
	for i, l := range p.Levels {
		levels[i] = AlertLevelStyle(l).Render(string(l))
	}
	recipients := make([]string, len(p.Recipients))
	for i, r := range p.Recipients {
		recipients[i] = string(r)
	}

	rows := [][]string{
		{"Email", channelState(p.EmailEnabled, p.Email)},
		{"SMS", channelState(p.SMSEnabled, p.Phone)},
		{"Levels", joinOrNone(levels)},
		{"Recipients", joinOrNone(recipients)},
	}
	return RenderBox("Alert settings", RenderTable([]string{"Setting", "Value"}, rows))
}

func channelState(enabled bool, dest string) string {
	if !enabled {
		return Dim("off")
	}
	if strings.TrimSpace(dest) == "" {
		return StyleGreen.Render("on") + " " + StyleRed.Render("(no destination)")
	}
	return StyleGreen.Render("on") + " " + dest
}

func joinOrNone(vals []string) string {
	if len(vals) == 0 {
		return Dim("none")
	}
	return strings.Join(vals, ", ")
}
