package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_DashboardLoadsOnStartup(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	assert.NotContains(t, d.Screen(), "Loading...")
	assert.True(t, d.ScreenContains("CareStock Watch", "Dashboard", "Insulin"))
}

func TestTUI_QuitWithQ(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
}

func TestTUI_PageKeysSwitchViews(t *testing.T) {
	tests := []struct {
		key   rune
		want  ViewID
		title string
	}{
		{'2', ViewAnalytics, "Analytics"},
		{'3', ViewActions, "Actions"},
		{'4', ViewAlerts, "Alerts"},
		{'5', ViewImpact, "Impact"},
		{'6', ViewSettings, "Settings"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			app := testApp(t)
			d := NewTestDriver(t, app)

			d.PressKey(tt.key)

			assert.Equal(t, tt.want, d.ActiveViewID())
			assert.Equal(t, tt.title, d.ActiveViewTitle())
			assert.Equal(t, 2, d.ViewStackLen())
			assert.NotContains(t, d.View(), "Loading...")
		})
	}
}

func TestTUI_SwitchingPagesKeepsStackShallow(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('2')
	d.PressKey('5')
	assert.Equal(t, ViewImpact, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())

	d.PressKey('1')
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_EscReturnsToDashboard(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('4')
	require.Equal(t, ViewAlerts, d.ActiveViewID())

	d.PressEsc()

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_RefreshKeepsView(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('r')

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Contains(t, d.View(), "Insulin")
}

func TestTUI_ActionsListsAtRiskRows(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('3')

	view := d.Screen()
	assert.Contains(t, view, "Take action on at-risk items")
	assert.Contains(t, view, "Insulin")
	assert.Contains(t, view, "Gauze")
	assert.NotContains(t, view, "Saline")
	assert.Contains(t, view, "No actions logged yet.")
}

func TestTUI_ActionsEnterOpensFormAndEscCancels(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('3')
	d.PressDown()
	d.PressEnter()

	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 3, d.ViewStackLen())
	assert.Equal(t, "Log action", d.ActiveViewTitle())

	// q and digits belong to the form while it is open.
	d.PressKey('q')
	assert.False(t, d.IsQuitting())
	assert.Equal(t, ViewForm, d.ActiveViewID())

	d.PressEsc()

	assert.Equal(t, ViewActions, d.ActiveViewID())
	assert.Contains(t, d.LastOutput(), "Cancelled.")

	resp, err := app.Actions.Recent(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Entries)
}

func TestTUI_SettingsEditOpensForm(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('6')
	assert.Contains(t, d.View(), "Alert settings")

	d.PressKey('e')
	assert.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, "Edit settings", d.ActiveViewTitle())

	d.PressEsc()
	assert.Equal(t, ViewSettings, d.ActiveViewID())
}

func TestTUI_FiltersShownInHeader(t *testing.T) {
	app := testApp(t)
	m := newAppModel(app, &snapshotFilters{locations: []string{"Rural Clinic"}})

	assert.Contains(t, m.renderHeader(), "locations: Rural Clinic")
}
