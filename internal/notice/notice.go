// Package notice carries transient user-facing status messages.
package notice

import "sync"

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notice is one toast-style message.
type Notice struct {
	Title       string
	Description string
	Severity    Severity
}

// Info builds a default-severity notice.
func Info(title, description string) Notice {
	return Notice{Title: title, Description: description, Severity: SeverityDefault}
}

// Destructive builds an error notice.
func Destructive(title, description string) Notice {
	return Notice{Title: title, Description: description, Severity: SeverityDestructive}
}

// IsDestructive reports whether the notice signals a failure.
func (n Notice) IsDestructive() bool {
	return n.Severity == SeverityDestructive
}

// Notifier receives notices.
type Notifier interface {
	Notify(n Notice)
}

// Func adapts a function to Notifier.
type Func func(Notice)

func (f Func) Notify(n Notice) { f(n) }

// Discard drops every notice.
var Discard Notifier = Func(func(Notice) {})

// Multi fans a notice out to each non-nil notifier in order.
func Multi(notifiers ...Notifier) Notifier {
	out := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	return Func(func(n Notice) {
		for _, target := range out {
			target.Notify(n)
		}
	})
}

// Recorder keeps every notice it receives.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

// All returns a copy of the recorded notices, oldest first.
func (r *Recorder) All() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Count returns how many notices of the given severity were recorded.
func (r *Recorder) Count(sev Severity) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, x := range r.notices {
		if x.Severity == sev {
			n++
		}
	}
	return n
}

// Reset forgets all recorded notices.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.notices = nil
	r.mu.Unlock()
}
