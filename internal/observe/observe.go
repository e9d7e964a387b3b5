// Package observe carries flow events from the intake and generation state
// machines and the catalog service to a log sink. It has no internal
// dependencies so the timer-driven flows stay free of storage packages.
package observe

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"
)

// FlowEvent captures one observable step of a flow or read use case.
type FlowEvent struct {
	Name     string
	Duration time.Duration
	Err      error
	Fields   map[string]any
}

// Observer receives flow events.
type Observer interface {
	Observe(ctx context.Context, event FlowEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Observe(context.Context, FlowEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes events as slog text records to w. A nil writer
// yields a NoopObserver.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) Observe(ctx context.Context, event FlowEvent) {
	attrs := make([]any, 0, 4+len(event.Fields)*2)
	attrs = append(attrs, "event", event.Name)
	if event.Duration > 0 {
		attrs = append(attrs, "duration_ms", event.Duration.Milliseconds())
	}

	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, k, event.Fields[k])
	}

	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.WarnContext(ctx, "studyai_flow", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "studyai_flow", attrs...)
}

// ObserverOrNoop returns the first non-nil observer.
func ObserverOrNoop(observers ...Observer) Observer {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopObserver{}
}

// EventRecorder keeps events in memory. Useful for tests.
type EventRecorder struct {
	Events []FlowEvent
}

func (r *EventRecorder) Observe(_ context.Context, event FlowEvent) {
	r.Events = append(r.Events, event)
}

// Names returns the recorded event names in order.
func (r *EventRecorder) Names() []string {
	out := make([]string, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Name
	}
	return out
}
