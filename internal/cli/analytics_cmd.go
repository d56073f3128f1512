package cli

import (
	"fmt"

	"github.com/alexanderramin/carestock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAnalyticsCmd(app *App, filters *snapshotFilters) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show status distribution, risk by location and the days-of-cover heatmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Analytics.Analyze(cmd.Context(), filters.request())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnalytics(resp))
			return nil
		},
	}
}

func newImpactCmd(app *App, filters *snapshotFilters) *cobra.Command {
	return &cobra.Command{
		Use:   "impact",
		Short: "Estimate patients protected and cost saved by acting on at-risk items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Analytics.Estimate(cmd.Context(), filters.request())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImpact(resp))
			return nil
		},
	}
}

func newAlertsCmd(app *App, filters *snapshotFilters) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Preview the alerts the current settings would send",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Analytics.Preview(cmd.Context(), filters.request())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAlertPreview(resp))
			return nil
		},
	}
}
