package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/carestock/internal/cli/formatter"
	"github.com/alexanderramin/carestock/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Inventory service.InventoryService
	Analytics service.AnalyticsService
	Actions   service.ActionService
	Settings  service.SettingsService
	Import    service.ImportService

	// WarehouseFeed is set when the stock-health feed is read from the
	// MySQL warehouse. The local mirror is unused then, so import refuses.
	WarehouseFeed bool

	// IsInteractive reports whether bare "carestock" should open the
	// dashboard. Nil means never.
	IsInteractive func() bool

	// Now overrides the clock used for relative timestamps.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "carestock" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	filters := &snapshotFilters{}

	root := &cobra.Command{
		Use:           "carestock",
		Short:         "Hospital stock-health dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runDashboard(app, filters)
			}
			resp, err := app.Inventory.Snapshot(cmd.Context(), filters.request())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(resp))
			return nil
		},
	}
	filters.register(root)

	root.AddCommand(
		newDashboardCmd(app, filters),
		newStatusCmd(app, filters),
		newForecastCmd(app, filters),
		newOverstockCmd(app, filters),
		newAnalyticsCmd(app, filters),
		newImpactCmd(app, filters),
		newAlertsCmd(app, filters),
		newExportCmd(app, filters),
		newActionCmd(app),
		newSettingsCmd(app),
		newImportCmd(app),
	)

	return root
}
