package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const subjectBarWidth = 20

// FormatStats renders the headline study metrics.
func FormatStats(s domain.StudyStats) string {
	cell := func(value, label string, style lipgloss.Style) string {
		return style.Bold(true).Render(value) + "\n" + Dim(label)
	}
	cards := []string{
		cell(FormatHours(s.TotalStudyTime), "Study Time", StyleBlue),
		cell(fmt.Sprintf("%d", s.DocumentsProcessed), "Documents", StylePurple),
		cell(fmt.Sprintf("%d", s.AssessmentsCompleted), "Assessments", StyleYellow),
		cell(fmt.Sprintf("%d%%", s.AverageScore), "Avg Score", ToneStyle(domain.ScoreTone(s.AverageScore))),
	}
	for i := range cards[:len(cards)-1] {
		cards[i] = lipgloss.NewStyle().PaddingRight(4).Render(cards[i])
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		StyleHeader.Render(fmt.Sprintf("🔥 %d day", s.CurrentStreakDays)),
		Dim("study streak")))
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		Bold("Weekly goal"),
		RenderProgress(s.WeeklyGoalPct, subjectBarWidth),
		Dim("of "+FormatHours(s.WeeklyTarget))))
	return b.String()
}

// FormatSubjects renders per-subject progress bars.
func FormatSubjects(subjects []domain.SubjectProgress) string {
	if len(subjects) == 0 {
		return Dim("No subjects tracked yet.") + "\n"
	}
	rows := make([][]string, len(subjects))
	for i, s := range subjects {
		rows[i] = []string{StyleFg.Render(s.Subject), RenderProgress(s.ProgressPct, subjectBarWidth)}
	}
	return RenderTable([]string{"SUBJECT", "PROGRESS"}, rows)
}

// FormatActivity renders the recent activity feed relative to now.
func FormatActivity(acts []domain.Activity, now time.Time) string {
	if len(acts) == 0 {
		return Dim("No recent activity.") + "\n"
	}
	var b strings.Builder
	for _, a := range acts {
		b.WriteString(Badge(string(a.Kind), domain.ActivityTone(a.Kind)))
		b.WriteString(" ")
		b.WriteString(StyleFg.Render(a.Title))
		b.WriteString(Dim(" · " + a.Subject))
		switch {
		case a.Score != nil:
			b.WriteString("  ")
			b.WriteString(ToneStyle(domain.ScoreTone(*a.Score)).Render(fmt.Sprintf("%d%%", *a.Score)))
		case a.ProgressPct != nil:
			b.WriteString("  ")
			b.WriteString(StyleBlue.Render(fmt.Sprintf("%d%% read", *a.ProgressPct)))
		}
		b.WriteString("  ")
		b.WriteString(Dim(RelativeTimeFrom(a.OccurredAt, now)))
		b.WriteString("\n")
	}
	return b.String()
}
