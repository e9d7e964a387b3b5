package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyai/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxBarWidth = 60

// assessmentsView shows the generator controls above the assessment cards.
// The cycle itself lives on SharedState, so it keeps running when the user
// switches sections.
type assessmentsView struct {
	state   *SharedState
	spinner spinner.Model
	bar     progress.Model
}

func newAssessmentsView(state *SharedState) *assessmentsView {
	return &assessmentsView{
		state: state,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(formatter.ColorPurple)),
		),
		bar: progress.New(
			progress.WithSolidFill(string(formatter.ColorPurple)),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth(state.Width)),
		),
	}
}

func barWidth(termWidth int) int {
	return min(max(termWidth-24, 10), maxBarWidth)
}

func (v *assessmentsView) ID() ViewID    { return ViewAssessments }
func (v *assessmentsView) Title() string { return "Assessments" }

func (v *assessmentsView) ShortHelp() []key.Binding {
	if v.state.Generator.State().IsGenerating {
		return []key.Binding{
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate assessment")),
	}
}

func (v *assessmentsView) Init() tea.Cmd {
	if v.state.Generator.State().IsGenerating {
		return v.spinner.Tick
	}
	return nil
}

func (v *assessmentsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.bar.Width = barWidth(msg.Width)
		return v, nil

	case spinner.TickMsg:
		// Let the animation lapse once the cycle is over.
		if !v.state.Generator.State().IsGenerating {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "g":
			if v.state.Generator.Start() {
				return v, v.spinner.Tick
			}
		case "x":
			v.state.Generator.Cancel()
		}
	}
	return v, nil
}

func (v *assessmentsView) View() string {
	var b strings.Builder
	b.WriteString(formatter.FormatIntro(formatter.AssessmentsIntro))
	b.WriteString("\n")
	b.WriteString(formatter.RenderBox("Assessment Generator", v.generatorPanel()))
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatAssessments(v.state.Generator.Tasks()))
	return b.String()
}

func (v *assessmentsView) generatorPanel() string {
	gen := v.state.Generator
	state := gen.State()

	var b strings.Builder
	b.WriteString(formatter.Dim("Generate new assessments from your documents"))
	b.WriteString("\n\n")
	switch {
	case state.IsGenerating:
		b.WriteString(v.spinner.View())
		b.WriteString(" ")
		b.WriteString(formatter.StylePurple.Render("Generating..."))
		b.WriteString("\n")
		b.WriteString(formatter.Dim("Analyzing documents..."))
		b.WriteString(fmt.Sprintf("  %3d%%\n", state.PercentComplete))
		b.WriteString(v.bar.ViewAs(float64(state.PercentComplete) / 100))
	case state.PercentComplete >= 100:
		b.WriteString(formatter.FormatGenerationProgress(state, 0))
		b.WriteString("\n")
		b.WriteString(formatter.StyleBlue.Render("◆ Generate Assessment"))
	default:
		b.WriteString(formatter.StyleBlue.Render("◆ Generate Assessment"))
	}
	return b.String()
}
