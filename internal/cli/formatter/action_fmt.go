package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/domain"
)

// FormatRecentActions renders the action log, newest first.
func FormatRecentActions(resp *app.RecentActionsResponse, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Recent actions"))
	b.WriteString("\n")

	if resp.Unavailable {
		b.WriteString(Info("Action log unavailable. Try again later."))
		if resp.Reason != "" {
			b.WriteString("\n  " + Dim(resp.Reason))
		}
		b.WriteString("\n")
		return b.String()
	}
	if len(resp.Entries) == 0 {
		b.WriteString(Info("No actions logged yet.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		rows = append(rows, []string{
			HumanTimestampFrom(e.Timestamp, now),
			e.Location,
			e.Item,
			string(e.ActionType),
			e.UserName,
			Truncate(e.Notes, 40),
		})
	}
	b.WriteString(RenderTable([]string{"When", "Location", "Item", "Action", "By", "Notes"}, rows))
	return b.String()
}

// FormatActionLogged confirms a saved action.
func FormatActionLogged(e *domain.ActionLogEntry) string {
	return Success(fmt.Sprintf("Logged %s for %s at %s by %s",
		Bold(string(e.ActionType)), e.Item, e.Location, e.UserName))
}

// FormatImportResult summarises a snapshot import.
func FormatImportResult(res *app.ImportResult) string {
	var b strings.Builder
	b.WriteString(Success(fmt.Sprintf("Imported %s stock-health records", Bold(humanizeInt(res.RecordCount)))))
	b.WriteString("\n")
	if len(res.UnknownStatuses) > 0 {
		b.WriteString(StyleYellow.Render("! ") + "Unrecognised statuses kept without a badge: " + strings.Join(res.UnknownStatuses, ", "))
		b.WriteString("\n")
	}
	return b.String()
}
