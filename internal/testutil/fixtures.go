package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.GenerationTask)

func WithScore(score int) TaskOption {
	return func(t *domain.GenerationTask) {
		t.Score = &score
		t.Completed = true
	}
}

func WithDifficulty(d domain.Difficulty) TaskOption {
	return func(t *domain.GenerationTask) {
		t.Difficulty = d
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.GenerationTask) {
		t.CreatedAt = at
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.GenerationTask {
	id, _ := uuid.NewV7()
	t := &domain.GenerationTask{
		ID:                id.String(),
		Title:             title,
		Topic:             "Testing",
		Type:              domain.AssessmentMultipleChoice,
		Difficulty:        domain.DifficultyBeginner,
		ItemCount:         10,
		EstimatedDuration: 15 * time.Minute,
		CreatedAt:         SeedTime,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WriteFiles creates the named files under a fresh temp dir and returns the
// dir. Contents are keyed by file name.
func WriteFiles(t *testing.T, files map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, body, 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

// MinimalPDF is a tiny document that content sniffing recognises as a PDF.
var MinimalPDF = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")
