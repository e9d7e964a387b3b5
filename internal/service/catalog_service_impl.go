package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/alexanderramin/studyai/internal/observe"
	"github.com/alexanderramin/studyai/internal/repository"
)

// RecentActivityLimit caps the activity feed on the landing page.
const RecentActivityLimit = 5

type catalogService struct {
	assessments     repository.AssessmentRepo
	analytics       repository.AnalyticsRepo
	recommendations repository.RecommendationRepo
	observer        observe.Observer
}

func NewCatalogService(
	assessments repository.AssessmentRepo,
	analytics repository.AnalyticsRepo,
	recommendations repository.RecommendationRepo,
	observer observe.Observer,
) CatalogService {
	return &catalogService{
		assessments:     assessments,
		analytics:       analytics,
		recommendations: recommendations,
		observer:        observe.ObserverOrNoop(observer),
	}
}

func (s *catalogService) Landing(ctx context.Context) (page *LandingPage, err error) {
	start := time.Now()
	defer func() {
		s.observer.Observe(ctx, observe.FlowEvent{
			Name:     "catalog_landing",
			Duration: time.Since(start),
			Err:      err,
		})
	}()

	stats, err := s.analytics.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading study stats: %w", err)
	}
	subjects, err := s.analytics.ListSubjectProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading subject progress: %w", err)
	}
	activity, err := s.analytics.ListRecentActivity(ctx, RecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("loading recent activity: %w", err)
	}
	recs, err := s.recommendations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recommendations: %w", err)
	}
	plan, err := s.recommendations.StudyPlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading study plan: %w", err)
	}
	tasks, err := s.assessments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading assessments: %w", err)
	}

	return &LandingPage{
		Stats:           *stats,
		Subjects:        subjects,
		RecentActivity:  activity,
		Recommendations: recs,
		Plan:            *plan,
		Assessments:     tasks,
	}, nil
}

func (s *catalogService) Assessments(ctx context.Context) ([]domain.GenerationTask, error) {
	tasks, err := s.assessments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading assessments: %w", err)
	}
	return tasks, nil
}

// RecordGenerated persists a task produced by a generation cycle so later
// reads of the catalog include it.
func (s *catalogService) RecordGenerated(ctx context.Context, t domain.GenerationTask) error {
	if err := s.assessments.Create(ctx, &t); err != nil {
		s.observer.Observe(ctx, observe.FlowEvent{Name: "catalog_record", Err: err, Fields: map[string]any{"task": t.ID}})
		return fmt.Errorf("recording generated assessment: %w", err)
	}
	s.observer.Observe(ctx, observe.FlowEvent{Name: "catalog_record", Fields: map[string]any{"task": t.ID}})
	return nil
}
