package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/studyai/internal/config"
	"github.com/alexanderramin/studyai/internal/intake"
	"github.com/alexanderramin/studyai/internal/observe"
	"github.com/alexanderramin/studyai/internal/repository"
	"github.com/alexanderramin/studyai/internal/service"
	"github.com/alexanderramin/studyai/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

// testApp wires a full App backed by a seeded in-memory DB. Delays are short
// so the headless commands finish quickly on the wall clock.
func testApp(t *testing.T) (*App, *observe.EventRecorder) {
	t.Helper()
	database := testutil.NewSeededDB(t)
	events := &observe.EventRecorder{}

	cfg := config.Default()
	cfg.ProcessingDelay = 10 * time.Millisecond
	cfg.Tick = time.Millisecond

	catalog := service.NewCatalogService(
		repository.NewSQLiteAssessmentRepo(database),
		repository.NewSQLiteAnalyticsRepo(database),
		repository.NewSQLiteRecommendationRepo(database),
		nil,
	)
	return &App{
		Config:        cfg,
		Catalog:       catalog,
		Observer:      events,
		Now:           func() time.Time { return testutil.SeedTime },
		IsInteractive: func() bool { return false },
	}, events
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Landing ---

func TestRootCmd_NonInteractivePrintsLanding(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app)
	require.NoError(t, err)

	assert.Contains(t, out, "StudyAI")
	assert.Contains(t, out, "Transform Your")
	assert.Contains(t, out, "47.5h")
	assert.Contains(t, out, "3 assessments · 3 recommendations")
}

func TestRootCmd_InteractiveRunsTUI(t *testing.T) {
	app, _ := testApp(t)
	app.IsInteractive = func() bool { return true }
	ran := false
	app.RunTUI = func(*App) error {
		ran = true
		return nil
	}

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Empty(t, out)
}

func TestRootCmd_InvalidFlags(t *testing.T) {
	cases := map[string][]string{
		"zero step":     {"--step", "0"},
		"step over 100": {"--step", "150"},
		"zero tick":     {"--tick", "0s"},
		"zero delay":    {"analytics", "--processing-delay", "0s"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			app, _ := testApp(t)
			_, err := executeCmd(t, app, args...)
			assert.Error(t, err)
		})
	}
}

// --- Static sections ---

func TestAssessmentsCmd_ListsNewestFirst(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "assessments")
	require.NoError(t, err)

	assert.Contains(t, out, "AI-GENERATED ASSESSMENTS")
	ml := strings.Index(out, "Introduction to Machine Learning")
	nn := strings.Index(out, "Neural Networks Deep Dive")
	require.NotEqual(t, -1, ml)
	require.NotEqual(t, -1, nn)
	assert.Less(t, ml, nn)
	assert.Contains(t, out, "Retake Assessment")
	assert.Contains(t, out, "Start Assessment")
}

func TestAnalyticsCmd(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "analytics")
	require.NoError(t, err)

	assert.Contains(t, out, "TRACK YOUR PROGRESS")
	assert.Contains(t, out, "SUBJECT PROGRESS")
	assert.Contains(t, out, "Machine Learning")
	assert.Contains(t, out, "RECENT ACTIVITY")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "100% read")
}

func TestRecommendCmd(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "recommend")
	require.NoError(t, err)

	assert.Contains(t, out, "AI STUDY RECOMMENDATIONS")
	assert.Contains(t, out, "Review Linear Algebra Fundamentals")
	assert.Contains(t, out, "[high priority]")
	assert.Contains(t, out, "NEXT STUDY SESSION")
}

// --- Upload ---

func TestUploadCmd_ProcessesBatch(t *testing.T) {
	app, events := testApp(t)
	dir := testutil.WriteFiles(t, map[string][]byte{
		"lecture.pdf": testutil.MinimalPDF,
		"notes.txt":   []byte("Eigenvalues and eigenvectors\n"),
	})

	out, err := executeCmd(t, app, "upload",
		filepath.Join(dir, "lecture.pdf"), filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)

	assert.Contains(t, out, "Uploaded Documents (2)")
	assert.Contains(t, out, "Processing...")
	assert.Contains(t, out, "Documents processed")
	assert.Contains(t, out, "2 document(s) uploaded successfully.")
	assert.Contains(t, out, "Ready")
	assert.Contains(t, out, "Generate Study Materials")
	assert.Equal(t, []string{"intake_batch", "intake_processed"}, events.Names())
}

func TestUploadCmd_DirectoryExpands(t *testing.T) {
	app, _ := testApp(t)
	dir := testutil.WriteFiles(t, map[string][]byte{
		"ch1.txt": []byte("one"),
		"ch2.txt": []byte("two"),
		"ch3.pdf": testutil.MinimalPDF,
	})

	out, err := executeCmd(t, app, "upload", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "3 document(s) uploaded successfully.")
}

func TestUploadCmd_RejectsUnsupportedBatch(t *testing.T) {
	app, _ := testApp(t)
	dir := testutil.WriteFiles(t, map[string][]byte{"diagram.pdf": pngHeader})

	out, err := executeCmd(t, app, "upload", filepath.Join(dir, "diagram.pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, intake.ErrNoAcceptableType)
	assert.Contains(t, out, "Invalid file type")
	assert.NotContains(t, out, "Uploaded Documents")
}

func TestUploadCmd_MissingFile(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "upload", filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestUploadCmd_RequiresArgs(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "upload")
	assert.Error(t, err)
}

// --- Generate ---

func TestGenerateCmd_SingleCycle(t *testing.T) {
	app, events := testApp(t)
	out, err := executeCmd(t, app, "generate")
	require.NoError(t, err)

	for _, pct := range []string{" 20%", " 40%", " 60%", " 80%", "100%"} {
		assert.Contains(t, out, pct)
	}
	assert.Contains(t, out, "Assessment generated")
	assert.Contains(t, out, "Data Structures & Algorithms")
	assert.Contains(t, out, "1 assessment generated · 4 in catalog")
	assert.Equal(t, []string{"generation_started", "generation_completed"}, events.Names())

	tasks, err := app.Catalog.Assessments(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 4)
	assert.Equal(t, "Data Structures & Algorithms", tasks[0].Title)
}

func TestGenerateCmd_CountRunsBackToBack(t *testing.T) {
	app, _ := testApp(t)
	out, err := executeCmd(t, app, "generate", "--count", "3", "--step", "50")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "Data Structures & Algorithms"))
	assert.Contains(t, out, "3 assessments generated · 6 in catalog")
	assert.NotContains(t, out, " 20%", "step flag applies")

	tasks, err := app.Catalog.Assessments(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 6)
}

func TestGenerateCmd_InvalidCount(t *testing.T) {
	app, _ := testApp(t)
	_, err := executeCmd(t, app, "generate", "--count", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must be at least 1")
}

func TestGenerateCmd_InterruptedByContext(t *testing.T) {
	app, _ := testApp(t)
	app.Config.Tick = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	var buf bytes.Buffer
	err := runGenerate(ctx, &buf, app, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	tasks, err := app.Catalog.Assessments(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 3, "no task recorded for an interrupted cycle")
}
