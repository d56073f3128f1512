package cli

import (
	"fmt"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// snapshotCmd builds a command that renders one view of the snapshot.
func snapshotCmd(use, short string, a *App, filters *snapshotFilters, render func(*app.SnapshotResponse) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Inventory.Snapshot(cmd.Context(), filters.request())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render(resp))
			return nil
		},
	}
}

func newStatusCmd(app *App, filters *snapshotFilters) *cobra.Command {
	return snapshotCmd("status", "Show stock-health KPIs and the priority reorder list", app, filters, formatter.FormatStatus)
}

func newForecastCmd(app *App, filters *snapshotFilters) *cobra.Command {
	return snapshotCmd("forecast", "Show the demand forecast for at-risk items", app, filters, formatter.FormatForecast)
}

func newOverstockCmd(app *App, filters *snapshotFilters) *cobra.Command {
	return snapshotCmd("overstock", "List items with more than 90 days of cover", app, filters, formatter.FormatOverstock)
}
