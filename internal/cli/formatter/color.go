package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ToneColor returns the palette color for a tone. Unknown tones are dim.
func ToneColor(t domain.Tone) lipgloss.Color {
	switch t {
	case domain.ToneSuccess:
		return ColorGreen
	case domain.ToneWarning:
		return ColorYellow
	case domain.ToneDanger:
		return ColorRed
	case domain.ToneInfo:
		return ColorBlue
	default:
		return ColorDim
	}
}

// ToneStyle returns the foreground style for a tone.
func ToneStyle(t domain.Tone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ToneColor(t))
}

// Badge renders a bracketed, tone-colored label such as "[beginner]".
func Badge(label string, t domain.Tone) string {
	return ToneStyle(t).Render("[" + label + "]")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
