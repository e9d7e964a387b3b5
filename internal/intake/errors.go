package intake

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoAcceptableType indicates a batch contained no file of an
	// accepted category.
	ErrNoAcceptableType = errors.New("no acceptable file type")

	// ErrClosed indicates the collector was torn down.
	ErrClosed = errors.New("intake collector closed")
)

// ValidationError is returned when a whole batch is rejected. The visible
// collection is unchanged when it is returned.
type ValidationError struct {
	Rejected []string
}

func (e *ValidationError) Error() string {
	if len(e.Rejected) == 0 {
		return fmt.Sprintf("%s: empty batch", ErrNoAcceptableType)
	}
	return fmt.Sprintf("%s: rejected %s", ErrNoAcceptableType, strings.Join(e.Rejected, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrNoAcceptableType
}
