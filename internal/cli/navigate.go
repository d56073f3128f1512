package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack.
type popViewMsg struct{}

// refreshViewMsg asks every view on the stack to reload. force bypasses
// the snapshot cache.
type refreshViewMsg struct {
	force bool
}

// cmdOutputMsg carries a transient message shown above the active view.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a form completes or is cancelled.
// The appModel pops the form, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func refreshViews(force bool) tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{force: force} }
}

func outputCmd(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}
