package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/cli/formatter"
	"github.com/alexanderramin/carestock/internal/stockhealth"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type actionsLoadedMsg struct {
	snapshot *app.SnapshotResponse
	recent   *app.RecentActionsResponse
	err      error
}

// actionsView lists at-risk rows to act on and the recent action log.
type actionsView struct {
	state   *SharedState
	atRisk  []stockhealth.AugmentedRecord
	feed    app.FeedState
	recent  *app.RecentActionsResponse
	cursor  int
	loading bool
	err     error
}

func newActionsView(state *SharedState) *actionsView {
	return &actionsView{state: state, loading: true}
}

func (v *actionsView) ID() ViewID     { return ViewActions }
func (v *actionsView) Title() string { return "Actions" }

func (v *actionsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "select")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "log action")),
	}
}

func (v *actionsView) Init() tea.Cmd {
	return v.loadData(false)
}

func (v *actionsView) loadData(refresh bool) tea.Cmd {
	state := v.state
	return func() tea.Msg {
		ctx := context.Background()
		snap, err := state.App.Inventory.Snapshot(ctx, state.Request(refresh))
		if err != nil {
			return actionsLoadedMsg{err: err}
		}
		recent, err := state.App.Actions.Recent(ctx)
		if err != nil {
			return actionsLoadedMsg{err: err}
		}
		return actionsLoadedMsg{snapshot: snap, recent: recent}
	}
}

func (v *actionsView) selected() (stockhealth.AugmentedRecord, bool) {
	if v.cursor < 0 || v.cursor >= len(v.atRisk) {
		return stockhealth.AugmentedRecord{}, false
	}
	return v.atRisk[v.cursor], true
}

func (v *actionsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionsLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			return v, nil
		}
		v.feed = msg.snapshot.FeedState
		v.atRisk = msg.snapshot.AtRisk
		v.recent = msg.recent
		if v.cursor >= len(v.atRisk) {
			v.cursor = max(len(v.atRisk)-1, 0)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadData(msg.force)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.atRisk)-1 {
				v.cursor++
			}
		case "enter":
			if rec, ok := v.selected(); ok {
				return v, pushView(newActionFormView(v.state, rec.Location, rec.Item))
			}
		}
	}
	return v, nil
}

func (v *actionsView) View() string {
	if v.err != nil {
		return "\n" + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n"
	}
	if v.loading && v.recent == nil {
		return "\n  " + formatter.Dim("Loading...") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Take action on at-risk items"))
	b.WriteString("\n")
	switch {
	case v.feed.Unavailable:
		b.WriteString(formatter.FormatUnavailable(v.feed))
	case len(v.atRisk) == 0:
		b.WriteString(formatter.Info("No at-risk items for the current selection.") + "\n")
	default:
		for i, r := range v.atRisk {
			marker := "  "
			line := fmt.Sprintf("%s  %s · %s  %s", r.StatusBadge, r.Location, r.Item, formatter.Dim("days to stock-out "+formatter.FormatDays(r.DaysToStockout)))
			if i == v.cursor {
				marker = formatter.StyleHeader.Render("▸ ")
				line = formatter.Bold(line)
			}
			b.WriteString(marker + line + "\n")
		}
	}

	b.WriteString("\n")
	if v.recent != nil {
		b.WriteString(formatter.FormatRecentActions(v.recent, v.state.App.now()))
	}
	return b.String()
}
