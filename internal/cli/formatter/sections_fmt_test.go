package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/alexanderramin/studyai/internal/notice"
	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestFormatIntakeItems_StatusTracksPendingTail(t *testing.T) {
	items := []domain.IntakeItem{
		{Name: "old.pdf", SizeBytes: 2_400_000, Category: domain.CategoryPDF},
		{Name: "new.txt", SizeBytes: 512, Category: domain.CategoryText},
	}
	out := stripANSI(FormatIntakeItems(items, domain.IntakeBatchState{IsProcessing: true, PendingCount: 1}))

	assert.Contains(t, out, "Uploaded Documents (2)")
	lines := strings.Split(out, "\n")
	var oldLine, newLine string
	for _, l := range lines {
		if strings.Contains(l, "old.pdf") {
			oldLine = l
		}
		if strings.Contains(l, "new.txt") {
			newLine = l
		}
	}
	assert.Contains(t, oldLine, "Ready")
	assert.Contains(t, oldLine, "2.4 MB")
	assert.Contains(t, newLine, "Processing...")
	assert.NotContains(t, out, "Generate Study Materials")
}

func TestFormatIntakeItems_IdleShowsGenerateHint(t *testing.T) {
	items := []domain.IntakeItem{{Name: "a.pdf", Category: domain.CategoryPDF}}
	out := stripANSI(FormatIntakeItems(items, domain.IntakeBatchState{}))
	assert.Contains(t, out, "Ready")
	assert.Contains(t, out, "Generate Study Materials")

	assert.Contains(t, stripANSI(FormatIntakeItems(nil, domain.IntakeBatchState{})), "No documents uploaded yet.")
}

func TestFormatNotice(t *testing.T) {
	ok := stripANSI(FormatNotice(notice.Info("Documents processed", "1 document(s) uploaded successfully.")))
	assert.Equal(t, "✔ Documents processed  1 document(s) uploaded successfully.", ok)

	bad := stripANSI(FormatNotice(notice.Destructive("Invalid file type", "Please upload PDF, text, or document files.")))
	assert.True(t, strings.HasPrefix(bad, "✖ Invalid file type"))
}

func TestFormatAssessmentCard(t *testing.T) {
	pending := domain.GenerationTask{
		Title: "Introduction to Machine Learning", Topic: "AI Fundamentals",
		Type: domain.AssessmentMultipleChoice, Difficulty: domain.DifficultyBeginner,
		ItemCount: 15, EstimatedDuration: 20 * time.Minute,
	}
	out := stripANSI(FormatAssessmentCard(pending))
	assert.Contains(t, out, "[beginner]")
	assert.Contains(t, out, "Multiple Choice · 15 questions · 20 min")
	assert.Contains(t, out, "Start Assessment")
	assert.NotContains(t, out, "score")

	done := pending
	done.Completed = true
	done.Score = intPtr(92)
	out = stripANSI(FormatAssessmentCard(done))
	assert.Contains(t, out, "92% score")
	assert.Contains(t, out, "Retake Assessment")
}

func TestFormatGenerationProgress(t *testing.T) {
	assert.Empty(t, FormatGenerationProgress(domain.GenerationProgressState{}, 10))

	running := stripANSI(FormatGenerationProgress(domain.GenerationProgressState{IsGenerating: true, PercentComplete: 40}, 10))
	assert.Contains(t, running, "Analyzing documents...")
	assert.Contains(t, running, " 40%")

	done := stripANSI(FormatGenerationProgress(domain.GenerationProgressState{PercentComplete: 100}, 10))
	assert.Contains(t, done, "Assessment generated")
}

func TestFormatStatsAndSubjects(t *testing.T) {
	stats := domain.StudyStats{
		TotalStudyTime: 47*time.Hour + 30*time.Minute, DocumentsProcessed: 23,
		AssessmentsCompleted: 15, AverageScore: 87, CurrentStreakDays: 7,
		WeeklyGoalPct: 75, WeeklyTarget: 10 * time.Hour,
	}
	out := stripANSI(FormatStats(stats))
	for _, want := range []string{"47.5h", "23", "15", "87%", "7 day", "75%", "of 10h"} {
		assert.Contains(t, out, want)
	}

	subjects := stripANSI(FormatSubjects([]domain.SubjectProgress{{Subject: "Algorithms", ProgressPct: 90}}))
	assert.Contains(t, subjects, "Algorithms")
	assert.Contains(t, subjects, " 90%")
}

func TestFormatActivity(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	acts := []domain.Activity{
		{Kind: domain.ActivityAssessment, Title: "ML Fundamentals Assessment", Subject: "AI/ML", Score: intPtr(92), OccurredAt: now.Add(-2 * time.Hour)},
		{Kind: domain.ActivityDocument, Title: "Neural Networks Research Paper", Subject: "Deep Learning", ProgressPct: intPtr(100), OccurredAt: now.Add(-24 * time.Hour)},
	}
	out := stripANSI(FormatActivity(acts, now))
	assert.Contains(t, out, "[assessment] ML Fundamentals Assessment · AI/ML  92%  2 hours ago")
	assert.Contains(t, out, "100% read  1 day ago")
}

func TestFormatRecommendation(t *testing.T) {
	rec := domain.Recommendation{
		Kind: domain.RecommendFocusArea, Title: "Review Linear Algebra Fundamentals",
		Priority: domain.PriorityHigh, EstimatedTime: "2-3 hours", ConfidencePct: 92,
		Tags: []string{"Mathematics", "ML Prerequisites"}, Action: "Start Review",
	}
	out := stripANSI(FormatRecommendation(rec))
	assert.Contains(t, out, "[Focus Area] [high priority]")
	assert.Contains(t, out, "⏱ 2-3 hours · 92% confidence")
	assert.Contains(t, out, "#Mathematics #ML Prerequisites")
	assert.Contains(t, out, "→ Start Review")
}

func TestFormatStudyPlan(t *testing.T) {
	out := stripANSI(FormatStudyPlan(domain.StudyPlan{
		NextSession: "Today, 3:00 PM", Duration: 45 * time.Minute,
		Topic: "Linear Algebra Review", Kind: "Focused Study", Insight: "Keep going.",
	}))
	assert.Contains(t, out, "NEXT STUDY SESSION")
	assert.Contains(t, out, "Linear Algebra Review · 45 min")
	assert.Contains(t, out, "AI INSIGHT")
	assert.Contains(t, out, "Keep going.")
}

func TestFormatNav(t *testing.T) {
	out := stripANSI(FormatNav("Assessments"))
	assert.Equal(t, "StudyAI  Dashboard · Documents · Assessments · Analytics", out)
	assert.Contains(t, stripANSI(FormatHero()), "Study Experience")
}
