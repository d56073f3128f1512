package cli

import (
	"context"

	"github.com/alexanderramin/carestock/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// reportLoadedMsg carries rendered output for the report view with the
// matching id.
type reportLoadedMsg struct {
	id     ViewID
	output string
	err    error
}

// reportView renders formatter output for one page. load produces the
// text; the view only tracks loading and error state.
type reportView struct {
	state   *SharedState
	id      ViewID
	title   string
	load    func(ctx context.Context, state *SharedState, refresh bool) (string, error)
	output  string
	loading bool
	err     error
}

func newReportView(state *SharedState, id ViewID, title string, load func(context.Context, *SharedState, bool) (string, error)) *reportView {
	return &reportView{state: state, id: id, title: title, load: load, loading: true}
}

func (v *reportView) ID() ViewID     { return v.id }
func (v *reportView) Title() string { return v.title }

func (v *reportView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
	}
}

func (v *reportView) Init() tea.Cmd {
	return v.loadCmd(false)
}

func (v *reportView) loadCmd(refresh bool) tea.Cmd {
	state, id, load := v.state, v.id, v.load
	return func() tea.Msg {
		out, err := load(context.Background(), state, refresh)
		return reportLoadedMsg{id: id, output: out, err: err}
	}
}

func (v *reportView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		if msg.id != v.id {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		v.output = msg.output
	case refreshViewMsg:
		v.loading = true
		return v, v.loadCmd(msg.force)
	}
	return v, nil
}

func (v *reportView) View() string {
	switch {
	case v.err != nil:
		return "\n" + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n"
	case v.loading && v.output == "":
		return "\n  " + formatter.Dim("Loading...") + "\n"
	}
	return v.output
}
