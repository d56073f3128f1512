package cli

import (
	"context"

	"github.com/alexanderramin/carestock/internal/cli/formatter"
)

func newDashboardView(state *SharedState) View {
	return newReportView(state, ViewDashboard, "Dashboard", loadDashboard)
}

func loadDashboard(ctx context.Context, state *SharedState, refresh bool) (string, error) {
	resp, err := state.App.Inventory.Snapshot(ctx, state.Request(refresh))
	if err != nil {
		return "", err
	}
	if resp.Unavailable {
		return formatter.FormatUnavailable(resp.FeedState), nil
	}
	return formatter.FormatStatus(resp) + "\n" + formatter.FormatForecast(resp) + "\n" + formatter.FormatOverstock(resp), nil
}

func newAnalyticsView(state *SharedState) View {
	return newReportView(state, ViewAnalytics, "Analytics", func(ctx context.Context, state *SharedState, refresh bool) (string, error) {
		resp, err := state.App.Analytics.Analyze(ctx, state.Request(refresh))
		if err != nil {
			return "", err
		}
		return formatter.FormatAnalytics(resp), nil
	})
}

func newAlertsView(state *SharedState) View {
	return newReportView(state, ViewAlerts, "Alerts", func(ctx context.Context, state *SharedState, refresh bool) (string, error) {
		resp, err := state.App.Analytics.Preview(ctx, state.Request(refresh))
		if err != nil {
			return "", err
		}
		return formatter.FormatAlertPreview(resp), nil
	})
}

func newImpactView(state *SharedState) View {
	return newReportView(state, ViewImpact, "Impact", func(ctx context.Context, state *SharedState, refresh bool) (string, error) {
		resp, err := state.App.Analytics.Estimate(ctx, state.Request(refresh))
		if err != nil {
			return "", err
		}
		return formatter.FormatImpact(resp), nil
	})
}
