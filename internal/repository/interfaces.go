package repository

import (
	"context"

	"github.com/alexanderramin/studyai/internal/domain"
)

// AssessmentRepo stores the assessment cards shown in the assessments
// section. List returns them newest first.
type AssessmentRepo interface {
	Create(ctx context.Context, t *domain.GenerationTask) error
	List(ctx context.Context) ([]domain.GenerationTask, error)
	Count(ctx context.Context) (int, error)
}

type AnalyticsRepo interface {
	Stats(ctx context.Context) (*domain.StudyStats, error)
	ListSubjectProgress(ctx context.Context) ([]domain.SubjectProgress, error)
	ListRecentActivity(ctx context.Context, limit int) ([]domain.Activity, error)
}

type RecommendationRepo interface {
	List(ctx context.Context) ([]domain.Recommendation, error)
	StudyPlan(ctx context.Context) (*domain.StudyPlan, error)
}
