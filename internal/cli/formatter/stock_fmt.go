package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/stockhealth"
)

var atRiskAlign = []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight}

// FormatUnavailable renders the informational state shown when the
// stock-health feed has no table to read.
func FormatUnavailable(state app.FeedState) string {
	msg := "Stock-health data is not available yet."
	if state.Reason != "" {
		msg += "\n  " + Dim(state.Reason)
	}
	return Info(msg) + "\n"
}

// FormatFeedLine describes when and where the snapshot came from.
func FormatFeedLine(state app.FeedState) string {
	src := "live"
	if state.FromCache {
		src = "cached"
	}
	return Dim(fmt.Sprintf("Snapshot %s · %s", state.GeneratedAt.Local().Format("2006-01-02 15:04"), src))
}

// FormatKPIs renders the Critical / Warning / Healthy counters on one line.
func FormatKPIs(c stockhealth.StatusCounts) string {
	parts := []string{
		StyleRed.Render(fmt.Sprintf("🔴 Critical %d", c.Critical)),
		StyleYellow.Render(fmt.Sprintf("🟡 Warning %d", c.Warning)),
		StyleGreen.Render(fmt.Sprintf("🟢 Healthy %d", c.Healthy)),
	}
	if c.Unknown > 0 {
		parts = append(parts, Dim(fmt.Sprintf("Other %d", c.Unknown)))
	}
	return strings.Join(parts, "   ")
}

// FormatStatus renders the dashboard: KPIs and the priority reorder list.
func FormatStatus(resp *app.SnapshotResponse) string {
	if resp.Unavailable {
		return FormatUnavailable(resp.FeedState)
	}

	var b strings.Builder
	b.WriteString(RenderBox("Stock health", FormatKPIs(resp.Counts)+"\n"+FormatFeedLine(resp.FeedState)))
	b.WriteString("\n\n")
	b.WriteString(Header("Priority reorder list"))
	b.WriteString("\n")
	b.WriteString(FormatAtRiskTable(resp.AtRisk))
	return b.String()
}

// FormatAtRiskTable renders at-risk records, or a note when there are none.
func FormatAtRiskTable(recs []stockhealth.AugmentedRecord) string {
	if len(recs) == 0 {
		return Info("No at-risk items for the current selection.") + "\n"
	}
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			r.Location,
			r.Item,
			r.ItemPriority.Label(),
			StatusStyle(r.StockStatus).Render(r.StatusBadge),
			FormatUnits(r.ClosingStock),
			FormatDays(r.DaysToStockout),
			FormatDays(r.DaysOfCover),
		})
	}
	return RenderAlignedTable(
		[]string{"Location", "Item", "Priority", "Status", "Closing stock", "Days to stock-out", "Days of cover"},
		atRiskAlign,
		rows,
	)
}

// FormatForecast renders the forecast table for at-risk records.
func FormatForecast(resp *app.SnapshotResponse) string {
	if resp.Unavailable {
		return FormatUnavailable(resp.FeedState)
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%d-day demand forecast", resp.HorizonDays)))
	b.WriteString("\n")
	if len(resp.AtRisk) == 0 {
		b.WriteString(Info("No at-risk items to forecast.") + "\n")
	} else {
		rows := make([][]string, 0, len(resp.AtRisk))
		for _, r := range resp.AtRisk {
			rows = append(rows, []string{
				r.Location,
				r.Item,
				FormatUnits(r.AvgDailyDemand),
				FormatUnits(r.Forecast.ForecastUnits),
				FormatUnits(r.Forecast.LowerBound),
				FormatUnits(r.Forecast.UpperBound),
			})
		}
		b.WriteString(RenderAlignedTable(
			[]string{"Location", "Item", "Avg daily demand", "Forecast", "Low", "High"},
			[]Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight},
			rows,
		))
	}
	b.WriteString("\n")
	b.WriteString(Dim(resp.ForecastMethod()))
	b.WriteString("\n")
	return b.String()
}

// FormatOverstock renders records whose days of cover exceed the overstock
// threshold.
func FormatOverstock(resp *app.SnapshotResponse) string {
	if resp.Unavailable {
		return FormatUnavailable(resp.FeedState)
	}

	var b strings.Builder
	b.WriteString(Header("Overstock risk"))
	b.WriteString("\n")
	if len(resp.Overstocked) == 0 {
		b.WriteString(Info(fmt.Sprintf("No items above %d days of cover.", stockhealth.OverstockThresholdDays)) + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(resp.Overstocked))
	for _, r := range resp.Overstocked {
		rows = append(rows, []string{
			r.Location,
			r.Item,
			StylePurple.Render(r.OverstockLabel()),
			FormatUnits(r.ClosingStock),
			FormatDays(r.DaysOfCover),
		})
	}
	b.WriteString(RenderAlignedTable(
		[]string{"Location", "Item", "Flag", "Closing stock", "Days of cover"},
		[]Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight},
		rows,
	))
	return b.String()
}
