package domain

import "time"

type StudyStats struct {
	TotalStudyTime       time.Duration
	DocumentsProcessed   int
	AssessmentsCompleted int
	AverageScore         int
	CurrentStreakDays    int
	WeeklyGoalPct        int
	WeeklyTarget         time.Duration
}

type SubjectProgress struct {
	Subject     string
	ProgressPct int
}

type Activity struct {
	ID          string
	Kind        ActivityKind
	Title       string
	Subject     string
	Score       *int
	ProgressPct *int
	OccurredAt  time.Time
}

type Recommendation struct {
	ID            string
	Kind          RecommendationKind
	Title         string
	Description   string
	Priority      Priority
	EstimatedTime string
	ConfidencePct int
	Tags          []string
	Action        string
}

type StudyPlan struct {
	NextSession string
	Duration    time.Duration
	Topic       string
	Kind        string
	Insight     string
}
