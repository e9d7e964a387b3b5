package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyTone_Total(t *testing.T) {
	assert.Equal(t, ToneSuccess, DifficultyTone(DifficultyBeginner))
	assert.Equal(t, ToneWarning, DifficultyTone(DifficultyIntermediate))
	assert.Equal(t, ToneDanger, DifficultyTone(DifficultyAdvanced))
	assert.Equal(t, ToneMuted, DifficultyTone("expert"))
	assert.Equal(t, ToneMuted, DifficultyTone(""))
}

func TestPriorityTone_Total(t *testing.T) {
	assert.Equal(t, ToneDanger, PriorityTone(PriorityHigh))
	assert.Equal(t, ToneWarning, PriorityTone(PriorityMedium))
	assert.Equal(t, ToneSuccess, PriorityTone(PriorityLow))
	assert.Equal(t, ToneMuted, PriorityTone("urgent"))
}

func TestScoreTone(t *testing.T) {
	assert.Equal(t, ToneSuccess, ScoreTone(92))
	assert.Equal(t, ToneSuccess, ScoreTone(85))
	assert.Equal(t, ToneWarning, ScoreTone(84))
	assert.Equal(t, ToneWarning, ScoreTone(70))
	assert.Equal(t, ToneDanger, ScoreTone(69))
}

func TestKindTones_Fallback(t *testing.T) {
	assert.Equal(t, ToneInfo, ActivityTone(ActivityAssessment))
	assert.Equal(t, ToneSuccess, ActivityTone(ActivityDocument))
	assert.Equal(t, ToneMuted, ActivityTone("video"))
	assert.Equal(t, ToneDanger, RecommendationTone(RecommendFocusArea))
	assert.Equal(t, ToneMuted, RecommendationTone("other"))
}

func TestGenerationTask_Validate(t *testing.T) {
	score := 85
	valid := GenerationTask{
		ID: "a1", Title: "Neural Networks Deep Dive", Type: AssessmentShortAnswer,
		Difficulty: DifficultyIntermediate, ItemCount: 8, EstimatedDuration: 30 * time.Minute,
		Score: &score, Completed: true,
	}
	assert.NoError(t, valid.Validate())

	noItems := valid
	noItems.ItemCount = 0
	assert.Error(t, noItems.Validate())

	badDifficulty := valid
	badDifficulty.Difficulty = "expert"
	assert.Error(t, badDifficulty.Validate())

	scoreWithoutCompletion := valid
	scoreWithoutCompletion.Completed = false
	assert.Error(t, scoreWithoutCompletion.Validate())

	assert.Equal(t, "Retake Assessment", valid.ActionLabel())
	assert.Equal(t, "Start Assessment", scoreWithoutCompletion.ActionLabel())
}
