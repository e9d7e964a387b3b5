package domain

// Tone is the visual category a tag renders with.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneInfo    Tone = "info"
	ToneMuted   Tone = "muted"
)

// DifficultyTone maps a difficulty to its tone. Unmapped values are muted.
func DifficultyTone(d Difficulty) Tone {
	switch d {
	case DifficultyBeginner:
		return ToneSuccess
	case DifficultyIntermediate:
		return ToneWarning
	case DifficultyAdvanced:
		return ToneDanger
	default:
		return ToneMuted
	}
}

// PriorityTone maps a recommendation priority to its tone.
func PriorityTone(p Priority) Tone {
	switch p {
	case PriorityHigh:
		return ToneDanger
	case PriorityMedium:
		return ToneWarning
	case PriorityLow:
		return ToneSuccess
	default:
		return ToneMuted
	}
}

// ScoreTone grades a percentage score.
func ScoreTone(score int) Tone {
	switch {
	case score >= 85:
		return ToneSuccess
	case score >= 70:
		return ToneWarning
	default:
		return ToneDanger
	}
}

func ActivityTone(k ActivityKind) Tone {
	switch k {
	case ActivityAssessment:
		return ToneInfo
	case ActivityDocument:
		return ToneSuccess
	default:
		return ToneMuted
	}
}

func RecommendationTone(k RecommendationKind) Tone {
	switch k {
	case RecommendFocusArea:
		return ToneDanger
	case RecommendPractice:
		return ToneInfo
	case RecommendRevision:
		return ToneSuccess
	default:
		return ToneMuted
	}
}
