package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studyai/internal/domain"
)

func kindLabel(k domain.RecommendationKind) string {
	switch k {
	case domain.RecommendFocusArea:
		return "Focus Area"
	case domain.RecommendPractice:
		return "Practice"
	case domain.RecommendRevision:
		return "Revision"
	default:
		return string(k)
	}
}

// FormatRecommendation renders one recommendation card.
func FormatRecommendation(r domain.Recommendation) string {
	var b strings.Builder
	b.WriteString(Badge(kindLabel(r.Kind), domain.RecommendationTone(r.Kind)))
	b.WriteString(" ")
	b.WriteString(Badge(string(r.Priority)+" priority", domain.PriorityTone(r.Priority)))
	b.WriteString("\n")
	b.WriteString(Bold(r.Title))
	b.WriteString("\n")
	if r.Description != "" {
		b.WriteString(StyleFg.Render(r.Description))
		b.WriteString("\n")
	}
	b.WriteString(Dim(fmt.Sprintf("⏱ %s · %d%% confidence", r.EstimatedTime, r.ConfidencePct)))
	if len(r.Tags) > 0 {
		tags := make([]string, len(r.Tags))
		for i, t := range r.Tags {
			tags[i] = "#" + t
		}
		b.WriteString("  ")
		b.WriteString(StylePurple.Render(strings.Join(tags, " ")))
	}
	b.WriteString("\n")
	b.WriteString(StyleBlue.Render("→ " + r.Action))
	return b.String()
}

// FormatRecommendations renders every card separated by blank lines.
func FormatRecommendations(recs []domain.Recommendation) string {
	if len(recs) == 0 {
		return Dim("No recommendations yet.") + "\n"
	}
	cards := make([]string, len(recs))
	for i, r := range recs {
		cards[i] = FormatRecommendation(r)
	}
	return strings.Join(cards, "\n\n") + "\n"
}

// FormatStudyPlan renders the next session box and the insight box.
func FormatStudyPlan(p domain.StudyPlan) string {
	session := fmt.Sprintf("%s\n%s\n%s",
		Bold(p.NextSession),
		StyleFg.Render(fmt.Sprintf("%s · %s", p.Topic, FormatMinutes(p.Duration))),
		Dim(p.Kind))
	out := RenderBox("Next Study Session", session)
	if p.Insight != "" {
		out += "\n" + RenderBox("AI Insight", StyleFg.Width(64).Render(p.Insight))
	}
	return out + "\n"
}
