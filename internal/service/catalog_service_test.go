package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/studyai/internal/observe"
	"github.com/alexanderramin/studyai/internal/repository"
	"github.com/alexanderramin/studyai/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, seeded bool) (CatalogService, *observe.EventRecorder) {
	t.Helper()
	var database *sql.DB
	if seeded {
		database = testutil.NewSeededDB(t)
	} else {
		database = testutil.NewTestDB(t)
	}
	events := &observe.EventRecorder{}
	svc := NewCatalogService(
		repository.NewSQLiteAssessmentRepo(database),
		repository.NewSQLiteAnalyticsRepo(database),
		repository.NewSQLiteRecommendationRepo(database),
		events,
	)
	return svc, events
}

func TestCatalogService_Landing(t *testing.T) {
	svc, events := newTestCatalog(t, true)

	page, err := svc.Landing(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 87, page.Stats.AverageScore)
	assert.Len(t, page.Subjects, 4)
	assert.Len(t, page.RecentActivity, 3)
	assert.Len(t, page.Recommendations, 3)
	assert.Equal(t, "Linear Algebra Review", page.Plan.Topic)
	assert.Len(t, page.Assessments, 3)

	require.Equal(t, []string{"catalog_landing"}, events.Names())
	assert.NoError(t, events.Events[0].Err)
}

func TestCatalogService_LandingOnEmptyCatalog(t *testing.T) {
	svc, events := newTestCatalog(t, false)

	_, err := svc.Landing(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "loading study stats")

	require.Len(t, events.Events, 1)
	assert.ErrorIs(t, events.Events[0].Err, repository.ErrNotFound)
}

func TestCatalogService_RecordGenerated(t *testing.T) {
	svc, events := newTestCatalog(t, true)
	ctx := context.Background()

	task := testutil.NewTestTask("Data Structures & Algorithms")
	require.NoError(t, svc.RecordGenerated(ctx, *task))

	tasks, err := svc.Assessments(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 4)
	assert.Equal(t, task.ID, tasks[0].ID)
	assert.Equal(t, []string{"catalog_record"}, events.Names())
}

func TestCatalogService_RecordGeneratedRejectsInvalid(t *testing.T) {
	svc, events := newTestCatalog(t, true)

	task := testutil.NewTestTask("Broken")
	task.Title = ""
	err := svc.RecordGenerated(context.Background(), *task)
	assert.Error(t, err)
	require.Len(t, events.Events, 1)
	assert.Error(t, events.Events[0].Err)
}
