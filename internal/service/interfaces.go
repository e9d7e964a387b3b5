package service

import (
	"context"

	"github.com/alexanderramin/studyai/internal/domain"
)

// LandingPage is a snapshot of every static section the product renders.
type LandingPage struct {
	Stats           domain.StudyStats
	Subjects        []domain.SubjectProgress
	RecentActivity  []domain.Activity
	Recommendations []domain.Recommendation
	Plan            domain.StudyPlan
	Assessments     []domain.GenerationTask
}

type CatalogService interface {
	Landing(ctx context.Context) (*LandingPage, error)
	Assessments(ctx context.Context) ([]domain.GenerationTask, error)
	RecordGenerated(ctx context.Context, t domain.GenerationTask) error
}
