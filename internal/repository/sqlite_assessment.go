package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/studyai/internal/domain"
)

// SQLiteAssessmentRepo implements AssessmentRepo using a SQLite database.
type SQLiteAssessmentRepo struct {
	db *sql.DB
}

func NewSQLiteAssessmentRepo(db *sql.DB) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: db}
}

// Create stores a validated task. Created tasks sort ahead of the seed rows
// through a negative order index.
func (r *SQLiteAssessmentRepo) Create(ctx context.Context, t *domain.GenerationTask) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating assessment: %w", err)
	}
	query := `INSERT INTO assessments (id, title, topic, type, difficulty, item_count,
		estimated_minutes, score, completed, order_index, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MIN(order_index), 0) - 1 FROM assessments), ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Topic,
		string(t.Type),
		string(t.Difficulty),
		t.ItemCount,
		int(t.EstimatedDuration.Minutes()),
		nullableIntToValue(t.Score),
		boolToInt(t.Completed),
		t.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) List(ctx context.Context) ([]domain.GenerationTask, error) {
	query := `SELECT id, title, topic, type, difficulty, item_count, estimated_minutes,
		score, completed, created_at
		FROM assessments ORDER BY order_index, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer rows.Close()

	var tasks []domain.GenerationTask
	for rows.Next() {
		var (
			t                domain.GenerationTask
			kind, difficulty string
			estimated, done  int
			score            sql.NullInt64
			createdAt        string
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Topic, &kind, &difficulty, &t.ItemCount,
			&estimated, &score, &done, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning assessment: %w", err)
		}
		t.Type = domain.AssessmentType(kind)
		t.Difficulty = domain.Difficulty(difficulty)
		t.EstimatedDuration = minutes(estimated)
		t.Score = nullableInt(score)
		t.Completed = intToBool(done)
		if t.CreatedAt, err = parseTime("assessment created_at", createdAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *SQLiteAssessmentRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assessments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting assessments: %w", err)
	}
	return n, nil
}
