package db

import (
	"context"
	"fmt"
	"time"
)

// Seed loads the landing page catalog in one transaction. Activity and
// assessment timestamps are relative to now. It does nothing when the
// catalog already holds stats.
func Seed(ctx context.Context, uow UnitOfWork, now time.Time) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_stats`).Scan(&n); err != nil {
			return fmt.Errorf("checking seed state: %w", err)
		}
		if n > 0 {
			return nil
		}

		steps := []struct {
			name string
			fn   func(context.Context, DBTX, time.Time) error
		}{
			{"assessments", seedAssessments},
			{"stats", seedStats},
			{"subjects", seedSubjects},
			{"activities", seedActivities},
			{"recommendations", seedRecommendations},
			{"study plan", seedStudyPlan},
		}
		for _, s := range steps {
			if err := s.fn(ctx, tx, now.UTC()); err != nil {
				return fmt.Errorf("seeding %s: %w", s.name, err)
			}
		}
		return nil
	})
}

func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func seedAssessments(ctx context.Context, tx DBTX, now time.Time) error {
	rows := []struct {
		id, title, topic, kind, difficulty string
		items, minutes                     int
		score                              any
		completed                          bool
		age                                time.Duration
	}{
		{"seed-assessment-1", "Introduction to Machine Learning", "AI Fundamentals", "multiple-choice", "beginner", 15, 20, nil, false, 24 * time.Hour},
		{"seed-assessment-2", "Neural Networks Deep Dive", "Deep Learning", "short-answer", "intermediate", 8, 30, 85, true, 3 * 24 * time.Hour},
		{"seed-assessment-3", "Advanced Algorithm Analysis", "Algorithms", "essay", "advanced", 3, 45, 92, true, 7 * 24 * time.Hour},
	}
	for i, r := range rows {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO assessments (id, title, topic, type, difficulty, item_count,
			 estimated_minutes, score, completed, order_index, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.id, r.title, r.topic, r.kind, r.difficulty, r.items,
			r.minutes, r.score, boolToInt(r.completed), i, formatTime(now.Add(-r.age)),
		)
		if err != nil {
			return fmt.Errorf("inserting %s: %w", r.id, err)
		}
	}
	return nil
}

func seedStats(ctx context.Context, tx DBTX, _ time.Time) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO study_stats (id, total_study_minutes, documents_processed,
		 assessments_completed, average_score, current_streak_days, weekly_goal_pct,
		 weekly_target_minutes) VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		47*60+30, 23, 15, 87, 7, 75, 10*60,
	)
	return err
}

func seedSubjects(ctx context.Context, tx DBTX, _ time.Time) error {
	subjects := []struct {
		name string
		pct  int
	}{
		{"Machine Learning", 85},
		{"Data Structures", 72},
		{"Algorithms", 90},
		{"Mathematics", 68},
	}
	for i, s := range subjects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO subject_progress (subject, progress_pct, order_index) VALUES (?, ?, ?)`,
			s.name, s.pct, i,
		); err != nil {
			return fmt.Errorf("inserting %s: %w", s.name, err)
		}
	}
	return nil
}

func seedActivities(ctx context.Context, tx DBTX, now time.Time) error {
	rows := []struct {
		id, kind, title, subject string
		score, progress          any
		ago                      time.Duration
	}{
		{"seed-activity-1", "assessment", "ML Fundamentals Assessment", "AI/ML", 92, nil, 2 * time.Hour},
		{"seed-activity-2", "document", "Neural Networks Research Paper", "Deep Learning", nil, 100, 24 * time.Hour},
		{"seed-activity-3", "assessment", "Data Structures Quiz", "Computer Science", 85, nil, 2 * 24 * time.Hour},
	}
	for _, r := range rows {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO activities (id, kind, title, subject, score, progress_pct, occurred_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.id, r.kind, r.title, r.subject, r.score, r.progress, formatTime(now.Add(-r.ago)),
		); err != nil {
			return fmt.Errorf("inserting %s: %w", r.id, err)
		}
	}
	return nil
}

func seedRecommendations(ctx context.Context, tx DBTX, _ time.Time) error {
	rows := []struct {
		id, kind, title, description, priority, estimate string
		confidence                                       int
		action                                           string
		tags                                             []string
	}{
		{
			"seed-rec-1", "focus-area", "Review Linear Algebra Fundamentals",
			"Your recent performance suggests strengthening matrix operations and vector spaces will improve your machine learning comprehension.",
			"high", "2-3 hours", 92, "Start Review",
			[]string{"Mathematics", "ML Prerequisites"},
		},
		{
			"seed-rec-2", "practice", "Algorithm Practice Session",
			"Practice dynamic programming problems to reinforce the concepts from your recent algorithms study.",
			"medium", "1 hour", 87, "Practice Now",
			[]string{"Algorithms", "Programming"},
		},
		{
			"seed-rec-3", "revision", "Neural Network Architecture Review",
			"Explore advanced architectures such as transformers and attention mechanisms to build on your deep learning progress.",
			"low", "45 min", 95, "Explore Topic",
			[]string{"Deep Learning", "Advanced"},
		},
	}
	for i, r := range rows {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recommendations (id, kind, title, description, priority,
			 estimated_time, confidence_pct, action, order_index)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.id, r.kind, r.title, r.description, r.priority, r.estimate, r.confidence, r.action, i,
		); err != nil {
			return fmt.Errorf("inserting %s: %w", r.id, err)
		}
		for j, tag := range r.tags {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO recommendation_tags (recommendation_id, tag, order_index) VALUES (?, ?, ?)`,
				r.id, tag, j,
			); err != nil {
				return fmt.Errorf("tagging %s: %w", r.id, err)
			}
		}
	}
	return nil
}

func seedStudyPlan(ctx context.Context, tx DBTX, _ time.Time) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO study_plan (id, next_session, duration_minutes, topic, kind, insight)
		 VALUES (1, ?, ?, ?, ?, ?)`,
		"Today, 3:00 PM", 45, "Linear Algebra Review", "Focused Study",
		"Your learning velocity has increased 23% over the past week. "+
			"You show strong pattern recognition in algorithms but benefit from more hands-on practice. "+
			"Consider alternating between theory review and practical implementation.",
	)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
