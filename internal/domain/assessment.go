package domain

import (
	"fmt"
	"time"
)

// GenerationTask is one assessment card. Tasks produced by the generation
// flow are never mutated after they become visible.
type GenerationTask struct {
	ID                string
	Title             string
	Topic             string
	Type              AssessmentType
	Difficulty        Difficulty
	ItemCount         int
	EstimatedDuration time.Duration
	Score             *int
	Completed         bool
	CreatedAt         time.Time
}

// Validate checks the invariants a visible task must satisfy.
func (t *GenerationTask) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("assessment id is required")
	}
	if t.Title == "" {
		return fmt.Errorf("assessment %s: title is required", t.ID)
	}
	if t.ItemCount <= 0 {
		return fmt.Errorf("assessment %s: item count must be positive, got %d", t.ID, t.ItemCount)
	}
	if !ValidDifficulties[string(t.Difficulty)] {
		return fmt.Errorf("assessment %s: invalid difficulty %q", t.ID, t.Difficulty)
	}
	if !ValidAssessmentTypes[string(t.Type)] {
		return fmt.Errorf("assessment %s: invalid type %q", t.ID, t.Type)
	}
	if t.Score != nil && !t.Completed {
		return fmt.Errorf("assessment %s: score present on incomplete assessment", t.ID)
	}
	if t.Score != nil && (*t.Score < 0 || *t.Score > 100) {
		return fmt.Errorf("assessment %s: score %d out of range", t.ID, *t.Score)
	}
	return nil
}

// ActionLabel is the call to action shown on the card.
func (t *GenerationTask) ActionLabel() string {
	if t.Completed {
		return "Retake Assessment"
	}
	return "Start Assessment"
}

// GenerationProgressState tracks one in-flight generation cycle.
// PercentComplete stays within 0..100.
type GenerationProgressState struct {
	IsGenerating    bool
	PercentComplete int
}
