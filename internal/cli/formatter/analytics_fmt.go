package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/alexanderramin/carestock/internal/stockhealth"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

// FormatAnalytics renders status distribution, risk by location, the
// days-of-cover heatmap and life-saving items at risk.
func FormatAnalytics(resp *app.AnalyticsResponse) string {
	if resp.Unavailable {
		return FormatUnavailable(resp.FeedState)
	}

	var b strings.Builder
	b.WriteString(Header("Status distribution"))
	b.WriteString("\n")
	b.WriteString(formatDistribution(resp.Counts))

	b.WriteString("\n")
	b.WriteString(Header("Risk concentration by location"))
	b.WriteString("\n")
	b.WriteString(formatLocationRisk(resp.LocationRisk))

	b.WriteString("\n")
	b.WriteString(Header("Days of cover"))
	b.WriteString("\n")
	b.WriteString(FormatHeatmap(resp.Heatmap))

	b.WriteString("\n")
	b.WriteString(Header("Life-saving items at risk"))
	b.WriteString("\n")
	b.WriteString(FormatAtRiskTable(resp.LifeSavingAtRisk))
	return b.String()
}

func formatDistribution(c stockhealth.StatusCounts) string {
	max := c.Critical
	for _, n := range []int{c.Warning, c.Healthy, c.Unknown} {
		if n > max {
			max = n
		}
	}
	lines := []struct {
		label string
		n     int
		style lipgloss.Style
	}{
		{string(domain.StatusCritical), c.Critical, StyleRed},
		{string(domain.StatusWarning), c.Warning, StyleYellow},
		{string(domain.StatusHealthy), c.Healthy, StyleGreen},
	}
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%-9s %s\n", l.label, RenderBar(l.n, max, barWidth, l.style))
	}
	if c.Unknown > 0 {
		fmt.Fprintf(&b, "%-9s %s\n", "Other", RenderBar(c.Unknown, max, barWidth, StyleDim))
	}
	return b.String()
}

func formatLocationRisk(risks []stockhealth.LocationRisk) string {
	if len(risks) == 0 {
		return Info("No location has at-risk items.") + "\n"
	}
	width := 0
	for _, r := range risks {
		if w := lipgloss.Width(r.Location); w > width {
			width = w
		}
	}
	max := risks[0].AtRiskCount
	var b strings.Builder
	for _, r := range risks {
		pad := strings.Repeat(" ", width-lipgloss.Width(r.Location))
		fmt.Fprintf(&b, "%s%s  %s\n", r.Location, pad, RenderBar(r.AtRiskCount, max, barWidth, StyleRed))
	}
	return b.String()
}

// FormatHeatmap renders the location × item days-of-cover grid.
func FormatHeatmap(h stockhealth.CoverHeatmap) string {
	if len(h.Locations) == 0 {
		return Info("No records to chart.") + "\n"
	}
	max := h.Max()
	headers := append([]string{"Location"}, h.Items...)
	rows := make([][]string, 0, len(h.Locations))
	for i, loc := range h.Locations {
		row := []string{loc}
		for j := range h.Items {
			v := h.Cells[i][j]
			row = append(row, HeatCell(v, max)+" "+FormatDays(v))
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows) + Dim(fmt.Sprintf("Scale: 0 – %s days", FormatDays(max))) + "\n"
}

// FormatImpact renders the estimated impact figures.
func FormatImpact(resp *app.ImpactResponse) string {
	if resp.Unavailable {
		return FormatUnavailable(resp.FeedState)
	}
	im := resp.Impact
	rows := [][]string{
		{"Patients protected", humanizeInt(im.PatientsProtected)},
		{"Cost saved", FormatINR(im.CostSavedINR)},
		{"Waste reduction", fmt.Sprintf("%d%%", im.WasteReductionPercent)},
		{"Locations covered", humanizeInt(im.LocationsCovered)},
		{"Items monitored", humanizeInt(im.ItemsMonitored)},
	}

	var b strings.Builder
	b.WriteString(RenderBox("Estimated impact", RenderAlignedTable([]string{"Metric", "Value"}, []Align{AlignLeft, AlignRight}, rows)))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf(
		"Assumes %d patients per at-risk item per day over %d days of prevented stock-out, and %s per critical stock-out avoided.",
		stockhealth.PatientsPerItemPerDay,
		stockhealth.DaysOfStockoutPrevented,
		FormatINR(decimalFromInt(stockhealth.CostPerStockoutINR)),
	)))
	b.WriteString("\n")
	return b.String()
}

// FormatAlertPreview lists the alerts the current preferences would send.
func FormatAlertPreview(resp *app.AlertPreviewResponse) string {
	if resp.Unavailable {
		return FormatUnavailable(resp.FeedState)
	}

	var b strings.Builder
	b.WriteString(Header("Smart alerts preview"))
	b.WriteString("\n")
	if len(resp.Channels) == 0 {
		b.WriteString(Dim("No delivery channel enabled; alerts are shown here only.") + "\n")
	} else {
		b.WriteString(Dim("Channels: "+strings.Join(resp.Channels, ", ")) + "\n")
	}
	if len(resp.Preferences.Recipients) > 0 {
		names := make([]string, len(resp.Preferences.Recipients))
		for i, r := range resp.Preferences.Recipients {
			names[i] = string(r)
		}
		b.WriteString(Dim("Recipients: "+strings.Join(names, ", ")) + "\n")
	}
	b.WriteString("\n")

	if len(resp.Alerts) == 0 {
		b.WriteString(Info("No alerts would fire for the selected levels.") + "\n")
		return b.String()
	}
	rows := make([][]string, 0, len(resp.Alerts))
	for _, a := range resp.Alerts {
		rows = append(rows, []string{
			AlertLevelStyle(a.Level).Render(string(a.Level)),
			a.Record.Location,
			a.Record.Item,
			FormatUnits(a.Record.ClosingStock),
			FormatDays(a.Record.DaysToStockout),
		})
	}
	b.WriteString(RenderAlignedTable(
		[]string{"Level", "Location", "Item", "Closing stock", "Days to stock-out"},
		[]Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight},
		rows,
	))
	return b.String()
}
