package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/alexanderramin/studyai/internal/cli/formatter"
	"github.com/alexanderramin/studyai/internal/intake"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// pickerExtensions limits the file picker to the accepted document types.
// The collector still sniffs content, so a renamed file is rejected there.
var pickerExtensions = []string{".pdf", ".doc", ".docx", ".txt"}

// studyaiHuhTheme returns a custom huh theme using the formatter palette.
func studyaiHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: purple accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorPurple).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.File = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Directory = lipgloss.NewStyle().Foreground(formatter.ColorBlue)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.File = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.Directory = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardPickFile creates a huh form that browses from dir for one document.
func wizardPickFile(dir string, height int, result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Title("Choose a study document").
				Description(formatter.DropHint).
				CurrentDirectory(dir).
				AllowedTypes(pickerExtensions).
				ShowSize(true).
				FileAllowed(true).
				DirAllowed(false).
				Picking(true).
				Height(max(height, 5)).
				Value(result),
		),
	).WithTheme(studyaiHuhTheme()).WithShowHelp(false)
}

// wizardInputPaths creates a huh form for typing one or more paths, quoted
// the same way a terminal drop is.
func wizardInputPaths(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Paths to upload").
				Description("Separate paths with spaces; quote paths that contain spaces").
				Placeholder("~/notes/lecture-1.pdf").
				Validate(validateDroppedPaths).
				Value(result),
		),
	).WithTheme(studyaiHuhTheme()).WithShowHelp(false)
}

func validateDroppedPaths(s string) error {
	paths := intake.ParseDropped(s)
	if len(paths) == 0 {
		return errors.New("enter at least one path")
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return errors.New("not found: " + p)
		}
	}
	return nil
}

// startFilePicker opens the picker in the working directory and submits the
// chosen file when the form completes.
func startFilePicker(state *SharedState) tea.Cmd {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	var picked string
	form := wizardPickFile(dir, state.ContentHeight()-4, &picked)
	return startWizardCmd(state, "Choose Files", form, func() tea.Cmd {
		if picked == "" {
			return nil
		}
		return submitPaths(picked)
	})
}

// startPathInput opens the path form and submits what was typed.
func startPathInput(state *SharedState) tea.Cmd {
	var typed string
	form := wizardInputPaths(&typed)
	return startWizardCmd(state, "Enter Paths", form, func() tea.Cmd {
		paths := intake.ParseDropped(strings.TrimSpace(typed))
		if len(paths) == 0 {
			return nil
		}
		return submitPaths(paths...)
	})
}
