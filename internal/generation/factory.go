package generation

import (
	"fmt"
	"time"

	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/google/uuid"
)

// Factory synthesises the task produced when a cycle completes.
type Factory func(now time.Time) (domain.GenerationTask, error)

// PlaceholderFactory returns the fixed demo assessment. IDs are UUIDv7, so
// they sort by creation time.
func PlaceholderFactory(now time.Time) (domain.GenerationTask, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.GenerationTask{}, fmt.Errorf("generating assessment id: %w", err)
	}
	task := domain.GenerationTask{
		ID:                id.String(),
		Title:             "Data Structures & Algorithms",
		Topic:             "Computer Science",
		Type:              domain.AssessmentMultipleChoice,
		Difficulty:        domain.DifficultyIntermediate,
		ItemCount:         12,
		EstimatedDuration: 25 * time.Minute,
		CreatedAt:         now.UTC(),
	}
	if err := task.Validate(); err != nil {
		return domain.GenerationTask{}, err
	}
	return task, nil
}
