// Package schedule provides cancellable scheduled callbacks.
//
// Every Scheduler implementation delivers callbacks on a single logical
// thread: the flows built on top of it keep plain, unsynchronised state and
// rely on callbacks never interleaving with each other or with the caller
// that owns the scheduler.
package schedule

import "time"

// Handle is a scheduled callback that can be cancelled.
type Handle interface {
	// Stop cancels all future firings. It reports whether the call
	// prevented at least one firing; stopping twice returns false.
	Stop() bool
}

// Scheduler schedules one-shot and recurring callbacks.
type Scheduler interface {
	After(d time.Duration, fn func()) Handle
	Every(interval time.Duration, fn func()) Handle
}

// StopAll stops every non-nil handle and returns how many were live.
func StopAll(handles ...Handle) int {
	n := 0
	for _, h := range handles {
		if h != nil && h.Stop() {
			n++
		}
	}
	return n
}
