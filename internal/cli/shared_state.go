package cli

import (
	"context"

	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/alexanderramin/studyai/internal/generation"
	"github.com/alexanderramin/studyai/internal/intake"
	"github.com/alexanderramin/studyai/internal/notice"
	"github.com/alexanderramin/studyai/internal/observe"
	"github.com/alexanderramin/studyai/internal/schedule"
)

// toast is a transient notice shown above the status bar.
type toast struct {
	id     uint64
	notice notice.Notice
	handle schedule.Handle
}

// SharedState holds context shared across all views via pointer. Everything
// in it is touched only from the Update goroutine.
type SharedState struct {
	App   *App
	Sched schedule.Scheduler

	Intake    *intake.Collector
	Generator *generation.Driver

	toasts  []toast
	toastID uint64

	// Set when the catalog could not be read at startup.
	LoadErr error

	// Terminal dimensions
	Width  int
	Height int
}

// newSharedState builds both flows on sched. The generator is seeded from
// the catalog; generated tasks are written back to it.
func newSharedState(app *App, sched schedule.Scheduler) *SharedState {
	s := &SharedState{App: app, Sched: sched}
	observer := observe.ObserverOrNoop(app.TUIObserver)

	s.Intake = intake.NewCollector(sched, notice.Func(s.Notify),
		intake.WithProcessingDelay(app.Config.ProcessingDelay),
		intake.WithObserver(observer),
	)

	seed, err := app.Catalog.Assessments(context.Background())
	if err != nil {
		s.LoadErr = err
	}
	s.Generator = generation.NewDriver(sched, seed,
		generation.WithTick(app.Config.Tick),
		generation.WithStep(app.Config.Step),
		generation.WithClock(app.now),
		generation.WithObserver(observer),
		generation.WithOnComplete(s.recordGenerated),
	)
	return s
}

func (s *SharedState) recordGenerated(task domain.GenerationTask) {
	if err := s.App.Catalog.RecordGenerated(context.Background(), task); err != nil {
		s.Notify(notice.Destructive("Could not save assessment", err.Error()))
		return
	}
	s.Notify(notice.Info("Assessment generated", task.Title+" is ready."))
}

// SubmitPaths reads the files and hands them to the intake collector. Read
// failures become destructive toasts; rejections already produce one.
func (s *SharedState) SubmitPaths(paths []string) {
	if len(paths) == 0 {
		return
	}
	candidates, err := intake.FromPaths(paths)
	if err != nil {
		s.Notify(notice.Destructive("Could not read files", err.Error()))
		return
	}
	_, _ = s.Intake.Submit(candidates)
}

// Notify shows n as a toast until the configured TTL elapses.
func (s *SharedState) Notify(n notice.Notice) {
	s.toastID++
	id := s.toastID
	t := toast{id: id, notice: n}
	t.handle = s.Sched.After(s.App.Config.ToastTTL, func() { s.dismissToast(id) })
	s.toasts = append(s.toasts, t)
}

func (s *SharedState) dismissToast(id uint64) {
	for i, t := range s.toasts {
		if t.id == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns the visible notices, oldest first.
func (s *SharedState) Toasts() []notice.Notice {
	out := make([]notice.Notice, len(s.toasts))
	for i, t := range s.toasts {
		out[i] = t.notice
	}
	return out
}

// Close tears down both flows and pending toast timers.
func (s *SharedState) Close() {
	s.Intake.Close()
	s.Generator.Close()
	handles := make([]schedule.Handle, len(s.toasts))
	for i, t := range s.toasts {
		handles[i] = t.handle
	}
	schedule.StopAll(handles...)
	s.toasts = nil
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: nav + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4 - len(s.toasts)
	if h < 1 {
		return 1
	}
	return h
}
