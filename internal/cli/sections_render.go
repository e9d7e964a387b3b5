package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/studyai/internal/cli/formatter"
	"github.com/alexanderramin/studyai/internal/service"
)

// renderAnalytics composes the progress analytics section. The headless
// command and the TUI view share it.
func renderAnalytics(page *service.LandingPage, now time.Time) string {
	var b strings.Builder
	b.WriteString(formatter.FormatIntro(formatter.AnalyticsIntro))
	b.WriteString("\n")
	b.WriteString(formatter.FormatStats(page.Stats))
	b.WriteString("\n")
	b.WriteString(formatter.Header("Subject Progress"))
	b.WriteString("\n")
	b.WriteString(formatter.FormatSubjects(page.Subjects))
	b.WriteString("\n")
	b.WriteString(formatter.Header("Recent Activity"))
	b.WriteString("\n")
	b.WriteString(formatter.FormatActivity(page.RecentActivity, now))
	return b.String()
}

func renderRecommendations(page *service.LandingPage) string {
	var b strings.Builder
	b.WriteString(formatter.FormatIntro(formatter.RecommendationsIntro))
	b.WriteString("\n")
	b.WriteString(formatter.FormatRecommendations(page.Recommendations))
	b.WriteString("\n")
	b.WriteString(formatter.FormatStudyPlan(page.Plan))
	return b.String()
}
