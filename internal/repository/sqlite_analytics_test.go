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

func TestAnalyticsRepo_Stats(t *testing.T) {
	repo := NewSQLiteAnalyticsRepo(testutil.NewSeededDB(t))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 47*time.Hour+30*time.Minute, stats.TotalStudyTime)
	assert.Equal(t, 23, stats.DocumentsProcessed)
	assert.Equal(t, 15, stats.AssessmentsCompleted)
	assert.Equal(t, 87, stats.AverageScore)
	assert.Equal(t, 7, stats.CurrentStreakDays)
	assert.Equal(t, 75, stats.WeeklyGoalPct)
	assert.Equal(t, 10*time.Hour, stats.WeeklyTarget)
}

func TestAnalyticsRepo_Stats_NotFound(t *testing.T) {
	repo := NewSQLiteAnalyticsRepo(testutil.NewTestDB(t))
	_, err := repo.Stats(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalyticsRepo_SubjectProgressInDisplayOrder(t *testing.T) {
	repo := NewSQLiteAnalyticsRepo(testutil.NewSeededDB(t))

	subjects, err := repo.ListSubjectProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SubjectProgress{
		{Subject: "Machine Learning", ProgressPct: 85},
		{Subject: "Data Structures", ProgressPct: 72},
		{Subject: "Algorithms", ProgressPct: 90},
		{Subject: "Mathematics", ProgressPct: 68},
	}, subjects)
}

func TestAnalyticsRepo_RecentActivityNewestFirst(t *testing.T) {
	repo := NewSQLiteAnalyticsRepo(testutil.NewSeededDB(t))
	ctx := context.Background()

	all, err := repo.ListRecentActivity(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "ML Fundamentals Assessment", all[0].Title)
	assert.Equal(t, testutil.SeedTime.Add(-2*time.Hour), all[0].OccurredAt)
	require.NotNil(t, all[0].Score)
	assert.Equal(t, 92, *all[0].Score)
	assert.Nil(t, all[0].ProgressPct)

	assert.Equal(t, domain.ActivityDocument, all[1].Kind)
	require.NotNil(t, all[1].ProgressPct)
	assert.Equal(t, 100, *all[1].ProgressPct)
	assert.Nil(t, all[1].Score)

	limited, err := repo.ListRecentActivity(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
