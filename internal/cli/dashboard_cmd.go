package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App, filters *snapshotFilters) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(app, filters)
		},
	}
}

func runDashboard(app *App, filters *snapshotFilters) error {
	p := tea.NewProgram(newAppModel(app, filters), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
