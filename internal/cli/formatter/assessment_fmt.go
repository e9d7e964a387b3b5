package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyai/internal/domain"
)

// TypeLabel is the display name for an assessment type.
func TypeLabel(t domain.AssessmentType) string {
	switch t {
	case domain.AssessmentMultipleChoice:
		return "Multiple Choice"
	case domain.AssessmentShortAnswer:
		return "Short Answer"
	case domain.AssessmentEssay:
		return "Essay"
	default:
		return string(t)
	}
}

// FormatAssessmentCard renders one assessment with its stats and action.
func FormatAssessmentCard(t domain.GenerationTask) string {
	var b strings.Builder

	b.WriteString(Badge(string(t.Difficulty), domain.DifficultyTone(t.Difficulty)))
	if t.Completed && t.Score != nil {
		b.WriteString("  ")
		b.WriteString(ToneStyle(domain.ScoreTone(*t.Score)).Bold(true).Render(fmt.Sprintf("%d%%", *t.Score)))
		b.WriteString(Dim(" score"))
	}
	b.WriteString("\n")
	b.WriteString(Bold(t.Title))
	b.WriteString("\n")
	if t.Topic != "" {
		b.WriteString(StylePurple.Render(t.Topic))
		b.WriteString("\n")
	}
	b.WriteString(Dim(fmt.Sprintf("%s · %d questions · %s",
		TypeLabel(t.Type), t.ItemCount, FormatMinutes(t.EstimatedDuration))))
	b.WriteString("\n")

	action := t.ActionLabel()
	if t.Completed {
		b.WriteString(StyleDim.Render("↻ " + action))
	} else {
		b.WriteString(StyleBlue.Render("▶ " + action))
	}
	return b.String()
}

// FormatAssessments renders cards newest first, separated by blank lines.
func FormatAssessments(tasks []domain.GenerationTask) string {
	if len(tasks) == 0 {
		return Dim("No assessments yet.") + "\n"
	}
	cards := make([]string, len(tasks))
	for i, t := range tasks {
		cards[i] = FormatAssessmentCard(t)
	}
	return strings.Join(cards, "\n\n") + "\n"
}

// FormatGenerationProgress renders the generator status line. It is empty
// when no cycle has run.
func FormatGenerationProgress(state domain.GenerationProgressState, width int) string {
	switch {
	case state.IsGenerating:
		return Dim("Analyzing documents... ") + RenderProgress(state.PercentComplete, width)
	case state.PercentComplete >= 100:
		return StyleGreen.Render("✔ Assessment generated")
	default:
		return ""
	}
}
