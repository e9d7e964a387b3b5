package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/studyai/internal/domain"
)

// SQLiteRecommendationRepo implements RecommendationRepo using a SQLite database.
type SQLiteRecommendationRepo struct {
	db *sql.DB
}

func NewSQLiteRecommendationRepo(db *sql.DB) *SQLiteRecommendationRepo {
	return &SQLiteRecommendationRepo{db: db}
}

// List returns recommendations in display order with their tags attached.
// Tags are loaded after the recommendation rows are closed.
func (r *SQLiteRecommendationRepo) List(ctx context.Context) ([]domain.Recommendation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, title, description, priority, estimated_time, confidence_pct, action
		 FROM recommendations ORDER BY order_index, id`)
	if err != nil {
		return nil, fmt.Errorf("listing recommendations: %w", err)
	}

	var recs []domain.Recommendation
	index := map[string]int{}
	for rows.Next() {
		var (
			rec            domain.Recommendation
			kind, priority string
		)
		if err := rows.Scan(&rec.ID, &kind, &rec.Title, &rec.Description, &priority,
			&rec.EstimatedTime, &rec.ConfidencePct, &rec.Action); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning recommendation: %w", err)
		}
		rec.Kind = domain.RecommendationKind(kind)
		rec.Priority = domain.Priority(priority)
		index[rec.ID] = len(recs)
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating recommendations: %w", err)
	}
	rows.Close()

	if err := r.attachTags(ctx, recs, index); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *SQLiteRecommendationRepo) attachTags(ctx context.Context, recs []domain.Recommendation, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT recommendation_id, tag FROM recommendation_tags ORDER BY recommendation_id, order_index`)
	if err != nil {
		return fmt.Errorf("listing recommendation tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return fmt.Errorf("scanning recommendation tag: %w", err)
		}
		if i, ok := index[id]; ok {
			recs[i].Tags = append(recs[i].Tags, tag)
		}
	}
	return rows.Err()
}

func (r *SQLiteRecommendationRepo) StudyPlan(ctx context.Context) (*domain.StudyPlan, error) {
	var (
		p        domain.StudyPlan
		duration int
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT next_session, duration_minutes, topic, kind, insight FROM study_plan WHERE id = 1`,
	).Scan(&p.NextSession, &duration, &p.Topic, &p.Kind, &p.Insight)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("study plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study plan: %w", err)
	}
	p.Duration = minutes(duration)
	return &p, nil
}
