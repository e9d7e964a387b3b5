package domain

type MimeCategory string

const (
	CategoryPDF      MimeCategory = "pdf"
	CategoryText     MimeCategory = "text"
	CategoryDocument MimeCategory = "document"
	CategoryUnknown  MimeCategory = "unknown"
)

// AcceptedCategories is the default intake allowlist.
var AcceptedCategories = []MimeCategory{CategoryPDF, CategoryText, CategoryDocument}

type AssessmentType string

const (
	AssessmentMultipleChoice AssessmentType = "multiple-choice"
	AssessmentShortAnswer    AssessmentType = "short-answer"
	AssessmentEssay          AssessmentType = "essay"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

type GenerationPhase string

const (
	PhaseIdle       GenerationPhase = "idle"
	PhaseGenerating GenerationPhase = "generating"
	PhaseComplete   GenerationPhase = "complete"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type RecommendationKind string

const (
	RecommendFocusArea RecommendationKind = "focus-area"
	RecommendPractice  RecommendationKind = "practice"
	RecommendRevision  RecommendationKind = "revision"
)

type ActivityKind string

const (
	ActivityAssessment ActivityKind = "assessment"
	ActivityDocument   ActivityKind = "document"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

// ValidAssessmentTypes is the canonical set of accepted assessment type strings.
var ValidAssessmentTypes = map[string]bool{
	"multiple-choice": true, "short-answer": true, "essay": true,
}
