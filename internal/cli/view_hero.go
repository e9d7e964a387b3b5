package cli

import (
	"strings"

	"github.com/alexanderramin/studyai/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// heroView is the landing screen at the bottom of the stack.
type heroView struct {
	state *SharedState
}

func newHeroView(state *SharedState) *heroView {
	return &heroView{state: state}
}

func (v *heroView) ID() ViewID    { return ViewHero }
func (v *heroView) Title() string { return "Dashboard" }

func (v *heroView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start learning")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "view demo")),
	}
}

func (v *heroView) Init() tea.Cmd { return nil }

func (v *heroView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			return v, showSection(ViewDocuments)
		case "d":
			return v, showSection(ViewAssessments)
		}
	}
	return v, nil
}

func (v *heroView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.FormatHero())
	b.WriteString("\n")
	b.WriteString(formatter.StyleGreen.Bold(true).Render("▶ Start Learning"))
	b.WriteString("    ")
	b.WriteString(formatter.StyleBlue.Render("◇ View Demo"))
	b.WriteString("\n\n")
	b.WriteString(formatter.Dim("1 documents · 2 assessments · 3 analytics · 4 recommendations"))
	b.WriteString("\n")
	if v.state.LoadErr != nil {
		b.WriteString("\n")
		b.WriteString(formatter.StyleRed.Render("Catalog unavailable: " + v.state.LoadErr.Error()))
		b.WriteString("\n")
	}
	return b.String()
}
