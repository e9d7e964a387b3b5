package cli

import (
	"strings"

	"github.com/alexanderramin/studyai/internal/cli/formatter"
	"github.com/alexanderramin/studyai/internal/schedule"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack with the hero at the bottom.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

// sectionKeys maps the number keys to the sections they open.
var sectionKeys = map[string]ViewID{
	"1": ViewDocuments,
	"2": ViewAssessments,
	"3": ViewAnalytics,
	"4": ViewRecommendations,
}

// sectionOrder is the tab order between sections.
var sectionOrder = []ViewID{ViewDocuments, ViewAssessments, ViewAnalytics, ViewRecommendations}

func newAppModel(app *App, sched schedule.Scheduler) appModel {
	state := newSharedState(app, sched)
	return appModel{
		state:     state,
		viewStack: []View{newHeroView(state)},
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
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func newSectionView(state *SharedState, id ViewID) View {
	switch id {
	case ViewDocuments:
		return newDocumentsView(state)
	case ViewAssessments:
		return newAssessmentsView(state)
	case ViewAnalytics:
		return newAnalyticsView(state)
	case ViewRecommendations:
		return newRecommendationsView(state)
	default:
		return newHeroView(state)
	}
}

// openSection shows a section directly above the hero. Switching between
// sections replaces rather than stacks.
func (m appModel) openSection(id ViewID) (tea.Model, tea.Cmd) {
	if v := m.activeView(); v != nil && v.ID() == id {
		return m, nil
	}
	v := newSectionView(m.state, id)
	if len(m.viewStack) > 1 {
		m.viewStack = append(m.viewStack[:1], v)
	} else {
		m.viewStack = append(m.viewStack, v)
	}
	return m, v.Init()
}

func (m appModel) nextSection() (tea.Model, tea.Cmd) {
	current := -1
	if v := m.activeView(); v != nil {
		for i, id := range sectionOrder {
			if id == v.ID() {
				current = i
			}
		}
	}
	return m.openSection(sectionOrder[(current+1)%len(sectionOrder)])
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
		// Every view keeps its own layout, so all of them hear about resizes.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case scheduledMsg:
		msg.fn()
		return m, nil

	case openSectionMsg:
		return m.openSection(msg.id)

	case submitPathsMsg:
		m.state.SubmitPaths(msg.paths)
		return m, nil

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd
	}

	return m.forward(msg)
}

// forward hands msg to the active view.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms and pastes go straight to the view so that every character,
	// including q and digits, reaches it.
	if v := m.activeView(); v != nil && (viewCapturesInput(v) || msg.Paste) {
		return m.forward(msg)
	}

	if id, ok := sectionKeys[msg.String()]; ok {
		return m.openSection(id)
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyTab:
		return m.nextSection()

	case msg.Type == tea.KeyEsc:
		// Pop view stack (go back)
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil
	}

	return m.forward(msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	if toasts := m.renderToasts(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
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
	active := "Dashboard"
	if v := m.activeView(); v != nil && v.Title() != "" {
		active = v.Title()
	}
	header := formatter.FormatNav(active)
	if m.state.Intake.State().IsProcessing {
		header += "  " + formatter.StyleYellow.Render("◌ processing")
	}
	if gen := m.state.Generator.State(); gen.IsGenerating {
		header += "  " + formatter.StylePurple.Render("◆ generating ") +
			formatter.RenderCompactBar(gen.PercentComplete, 10, false)
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderToasts() string {
	toasts := m.state.Toasts()
	if len(toasts) == 0 {
		return ""
	}
	lines := make([]string, len(toasts))
	for i, n := range toasts {
		lines[i] = formatter.FormatNotice(n)
	}
	return strings.Join(lines, "\n")
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if !viewCapturesInput(v) {
			hints = append(hints, formatter.Dim("1-4: sections"))
			if len(m.viewStack) > 1 {
				hints = append(hints, formatter.Dim("esc: back"))
			}
			hints = append(hints, formatter.Dim("q: quit"))
		}
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// viewCapturesInput returns true if the active view has its own input
// and should receive all key events (bypassing global keybindings like q/Esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	return v.ID() == ViewForm
}
