package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/alexanderramin/studyai/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationRepo_ListWithTags(t *testing.T) {
	repo := NewSQLiteRecommendationRepo(testutil.NewSeededDB(t))

	recs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "Review Linear Algebra Fundamentals", recs[0].Title)
	assert.Equal(t, domain.RecommendFocusArea, recs[0].Kind)
	assert.Equal(t, domain.PriorityHigh, recs[0].Priority)
	assert.Equal(t, 92, recs[0].ConfidencePct)
	assert.Equal(t, []string{"Mathematics", "ML Prerequisites"}, recs[0].Tags)
	assert.Equal(t, "Start Review", recs[0].Action)
	assert.NotEmpty(t, recs[0].Description)

	assert.Equal(t, domain.PriorityMedium, recs[1].Priority)
	assert.Equal(t, []string{"Algorithms", "Programming"}, recs[1].Tags)
	assert.Equal(t, domain.RecommendRevision, recs[2].Kind)
	assert.Equal(t, "45 min", recs[2].EstimatedTime)
}

func TestRecommendationRepo_EmptyCatalog(t *testing.T) {
	repo := NewSQLiteRecommendationRepo(testutil.NewTestDB(t))
	recs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = repo.StudyPlan(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecommendationRepo_StudyPlan(t *testing.T) {
	repo := NewSQLiteRecommendationRepo(testutil.NewSeededDB(t))

	plan, err := repo.StudyPlan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Today, 3:00 PM", plan.NextSession)
	assert.Equal(t, 45*time.Minute, plan.Duration)
	assert.Equal(t, "Linear Algebra Review", plan.Topic)
	assert.Equal(t, "Focused Study", plan.Kind)
	assert.Contains(t, plan.Insight, "learning velocity has increased 23%")
}
