package cli

import (
	"strings"

	"github.com/alexanderramin/studyai/internal/cli/formatter"
	"github.com/alexanderramin/studyai/internal/intake"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// documentsView is the upload section. Files arrive as a bracketed paste
// (a terminal drop) or through the file picker.
type documentsView struct {
	state *SharedState
}

func newDocumentsView(state *SharedState) *documentsView {
	return &documentsView{state: state}
}

func (v *documentsView) ID() ViewID    { return ViewDocuments }
func (v *documentsView) Title() string { return "Documents" }

func (v *documentsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "choose files")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "enter paths")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "clear")),
	}
}

func (v *documentsView) Init() tea.Cmd { return nil }

func (v *documentsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	if keyMsg.Paste {
		paths := intake.ParseDropped(string(keyMsg.Runes))
		if len(paths) == 0 {
			return v, nil
		}
		return v, submitPaths(paths...)
	}

	switch keyMsg.String() {
	case "o":
		return v, startFilePicker(v.state)
	case "p":
		return v, startPathInput(v.state)
	case "r":
		v.state.Intake.Reset()
	case "g":
		if len(v.state.Intake.Items()) > 0 && !v.state.Intake.State().IsProcessing {
			return v, showSection(ViewAssessments)
		}
	}
	return v, nil
}

func (v *documentsView) View() string {
	var b strings.Builder
	b.WriteString(formatter.FormatIntro(formatter.DocumentsIntro))
	b.WriteString("\n")

	zone := formatter.StyleBlue.Render("⇪ Drop your files here") + "\n" +
		formatter.Dim("Drag files onto the terminal, or press o to choose files") + "\n" +
		formatter.Dim(formatter.DropHint)
	b.WriteString(formatter.RenderBox("", zone))
	b.WriteString("\n\n")

	b.WriteString(formatter.FormatIntakeItems(v.state.Intake.Items(), v.state.Intake.State()))
	return b.String()
}
