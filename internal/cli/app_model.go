package cli

import (
	"strings"

	"github.com/alexanderramin/carestock/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI. It manages a view
// stack, a transient output line and a scrollable content area.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient output from forms, shown above the active view until the
	// next key press.
	lastOutput string

	contentVP viewport.Model
}

func newAppModel(a *App, filters *snapshotFilters) appModel {
	state := newSharedState(a, filters)

	vp := viewport.New(0, 0)
	vp.KeyMap = contentViewportKeyMap()

	return appModel{
		state:     state,
		viewStack: []View{newDashboardView(state)},
		contentVP: vp,
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.contentVP.Width = msg.Width
		m.contentVP.Height = m.state.ContentHeight()
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		m.contentVP.GotoTop()
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case refreshViewMsg:
		// Every view reloads so pages under a form see its changes.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case reportLoadedMsg:
		// Pages below the top reload on refresh too; deliver by id.
		for i, v := range m.viewStack {
			if v.ID() == msg.id {
				updated, _ := v.Update(msg)
				m.viewStack[i] = updated.(View)
			}
		}
		return m, nil

	case cmdOutputMsg:
		m.lastOutput = msg.output
		return m, nil

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, refreshViews(false))
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms receive every key, including q, digits and esc.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	m.lastOutput = ""

	if isContentScrollKey(msg) {
		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		return m, cmd
	}

	s := msg.String()
	if id, ok := pageKeys[s]; ok {
		return m.switchPage(id)
	}

	switch s {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case "r":
		return m, refreshViews(true)
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// switchPage shows a top-level page above the dashboard.
func (m appModel) switchPage(id ViewID) (tea.Model, tea.Cmd) {
	if v := m.activeView(); v != nil && v.ID() == id {
		return m, nil
	}
	home := m.viewStack[0]
	if id == ViewDashboard {
		m.viewStack = []View{home}
		return m, nil
	}
	page := newPageView(m.state, id)
	m.viewStack = []View{home, page}
	m.contentVP.GotoTop()
	return m, page.Init()
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var content string
	if v := m.activeView(); v != nil {
		content = v.View()
	}
	if m.lastOutput != "" {
		content = m.lastOutput + "\n\n" + content
	}
	if m.state.Height > 0 {
		vp := m.contentVP
		vp.SetContent(content)
		content = vp.View()
	}

	result := strings.Join([]string{m.renderHeader(), content, m.renderStatusBar()}, "\n")

	// Pad to terminal height so the alt-screen renderer leaves no stale lines.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	header := formatter.StylePurple.Render("CareStock Watch") + " " + formatter.Dim("· AI stock health")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}
	if f := m.state.FilterSummary(); f != "" {
		header += "  " + f
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if v.ID() != ViewForm {
			hints = append(hints, formatter.Dim("1-6: pages"), formatter.Dim("r: refresh"))
			if len(m.viewStack) > 1 {
				hints = append(hints, formatter.Dim("esc: back"))
			}
			hints = append(hints, formatter.Dim("q: quit"))
		}
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// contentViewportKeyMap leaves arrows and letters to the views.
func contentViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
}

func isContentScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyPgUp, tea.KeyPgDown, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}
