package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewAnalytics
	ViewActions
	ViewAlerts
	ViewImpact
	ViewSettings
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// pageKeys maps the number keys to top-level pages.
var pageKeys = map[string]ViewID{
	"1": ViewDashboard,
	"2": ViewAnalytics,
	"3": ViewActions,
	"4": ViewAlerts,
	"5": ViewImpact,
	"6": ViewSettings,
}

func newPageView(state *SharedState, id ViewID) View {
	switch id {
	case ViewAnalytics:
		return newAnalyticsView(state)
	case ViewActions:
		return newActionsView(state)
	case ViewAlerts:
		return newAlertsView(state)
	case ViewImpact:
		return newImpactView(state)
	case ViewSettings:
		return newSettingsView(state)
	default:
		return newDashboardView(state)
	}
}
