package domain

// IntakeItem is one accepted document. Items are immutable once accepted.
type IntakeItem struct {
	Name      string
	SizeBytes int64
	Category  MimeCategory
	MediaType string
}

// IntakeBatchState tracks in-flight simulated processing for a collector.
// PendingCount is the number of accepted items whose batch has not finished
// processing yet.
type IntakeBatchState struct {
	IsProcessing bool
	PendingCount int
}
