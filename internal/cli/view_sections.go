package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studyai/internal/cli/formatter"
	"github.com/alexanderramin/studyai/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// landingLoadedMsg signals that the catalog snapshot has been loaded.
type landingLoadedMsg struct {
	page *service.LandingPage
	err  error
}

func loadLanding(app *App) tea.Cmd {
	return func() tea.Msg {
		page, err := app.Catalog.Landing(context.Background())
		return landingLoadedMsg{page: page, err: err}
	}
}

// catalogView renders a read-only catalog section in a scrollable viewport.
// Analytics and recommendations differ only in how the page is rendered.
type catalogView struct {
	state   *SharedState
	id      ViewID
	title   string
	render  func(page *service.LandingPage) string
	vp      viewport.Model
	loading bool
	err     error
}

func newAnalyticsView(state *SharedState) *catalogView {
	return newCatalogView(state, ViewAnalytics, "Analytics", func(page *service.LandingPage) string {
		return renderAnalytics(page, state.App.now())
	})
}

// Recommendations sit under the Analytics entry of the nav.
func newRecommendationsView(state *SharedState) *catalogView {
	return newCatalogView(state, ViewRecommendations, "Analytics", renderRecommendations)
}

func newCatalogView(state *SharedState, id ViewID, title string, render func(*service.LandingPage) string) *catalogView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.MouseWheelEnabled = true
	return &catalogView{
		state:   state,
		id:      id,
		title:   title,
		render:  render,
		vp:      vp,
		loading: true,
	}
}

func (v *catalogView) ID() ViewID    { return v.id }
func (v *catalogView) Title() string { return v.title }

func (v *catalogView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *catalogView) Init() tea.Cmd {
	return loadLanding(v.state.App)
}

func (v *catalogView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case landingLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.vp.SetContent(v.render(msg.page))
		}
		return v, nil

	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, loadLanding(v.state.App)
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *catalogView) View() string {
	if v.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", v.err))
	}
	if v.loading {
		return formatter.Dim("Loading...")
	}
	return v.vp.View()
}
