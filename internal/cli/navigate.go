package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// scheduledMsg carries a timer callback onto the Update goroutine, so the
// intake and generation flows only ever run there.
type scheduledMsg struct {
	fn func()
}

// openSectionMsg asks the appModel to show a top-level section.
type openSectionMsg struct {
	id ViewID
}

// submitPathsMsg asks the appModel to submit files to the intake collector.
type submitPathsMsg struct {
	paths []string
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func showSection(id ViewID) tea.Cmd {
	return func() tea.Msg { return openSectionMsg{id: id} }
}

func submitPaths(paths ...string) tea.Cmd {
	return func() tea.Msg { return submitPathsMsg{paths: paths} }
}
