package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/studyai/internal/domain"
)

// SQLiteAnalyticsRepo implements AnalyticsRepo using a SQLite database.
type SQLiteAnalyticsRepo struct {
	db *sql.DB
}

func NewSQLiteAnalyticsRepo(db *sql.DB) *SQLiteAnalyticsRepo {
	return &SQLiteAnalyticsRepo{db: db}
}

func (r *SQLiteAnalyticsRepo) Stats(ctx context.Context) (*domain.StudyStats, error) {
	query := `SELECT total_study_minutes, documents_processed, assessments_completed,
		average_score, current_streak_days, weekly_goal_pct, weekly_target_minutes
		FROM study_stats WHERE id = 1`
	var (
		s             domain.StudyStats
		total, target int
	)
	err := r.db.QueryRowContext(ctx, query).Scan(
		&total, &s.DocumentsProcessed, &s.AssessmentsCompleted,
		&s.AverageScore, &s.CurrentStreakDays, &s.WeeklyGoalPct, &target,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("study stats: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study stats: %w", err)
	}
	s.TotalStudyTime = minutes(total)
	s.WeeklyTarget = minutes(target)
	return &s, nil
}

func (r *SQLiteAnalyticsRepo) ListSubjectProgress(ctx context.Context) ([]domain.SubjectProgress, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT subject, progress_pct FROM subject_progress ORDER BY order_index, subject`)
	if err != nil {
		return nil, fmt.Errorf("listing subject progress: %w", err)
	}
	defer rows.Close()

	var out []domain.SubjectProgress
	for rows.Next() {
		var p domain.SubjectProgress
		if err := rows.Scan(&p.Subject, &p.ProgressPct); err != nil {
			return nil, fmt.Errorf("scanning subject progress: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListRecentActivity returns the newest activity first. A non-positive limit
// returns everything.
func (r *SQLiteAnalyticsRepo) ListRecentActivity(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, title, subject, score, progress_pct, occurred_at
		 FROM activities ORDER BY occurred_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent activity: %w", err)
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		var (
			a               domain.Activity
			kind, occurred  string
			score, progress sql.NullInt64
		)
		if err := rows.Scan(&a.ID, &kind, &a.Title, &a.Subject, &score, &progress, &occurred); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		a.Kind = domain.ActivityKind(kind)
		a.Score = nullableInt(score)
		a.ProgressPct = nullableInt(progress)
		if a.OccurredAt, err = parseTime("activity occurred_at", occurred); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
