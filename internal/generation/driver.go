// Package generation drives the simulated assessment generation cycle.
package generation

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/alexanderramin/studyai/internal/observe"
	"github.com/alexanderramin/studyai/internal/schedule"
)

// Defaults applied when no option overrides them.
const (
	DefaultTick = 500 * time.Millisecond
	DefaultStep = 20
)

// ErrClosed indicates the driver was torn down.
var ErrClosed = errors.New("generation driver closed")

// Driver owns the visible assessment collection (newest first) and at most
// one running generation cycle. It is not safe for concurrent use.
type Driver struct {
	sched      schedule.Scheduler
	tick       time.Duration
	step       int
	factory    Factory
	observer   observe.Observer
	onComplete func(domain.GenerationTask)
	onProgress func(domain.GenerationProgressState)
	now        func() time.Time

	tasks  []domain.GenerationTask
	state  domain.GenerationProgressState
	phase  domain.GenerationPhase
	active *cycle
	cycles uint64
	closed bool
}

// cycle is one run from Generating(0) to completion. Each cycle owns its
// handle and counter.
type cycle struct {
	id      uint64
	percent int
	ticks   int
	handle  schedule.Handle
	started time.Time
}

// Option configures a Driver.
type Option func(*Driver)

// WithTick sets the tick interval. Non-positive values keep the default.
func WithTick(d time.Duration) Option {
	return func(dr *Driver) {
		if d > 0 {
			dr.tick = d
		}
	}
}

// WithStep sets the per-tick increment, clamped to 1..100.
func WithStep(step int) Option {
	return func(dr *Driver) {
		dr.step = min(max(step, 1), 100)
	}
}

// WithFactory replaces the placeholder task factory.
func WithFactory(f Factory) Option {
	return func(dr *Driver) {
		if f != nil {
			dr.factory = f
		}
	}
}

// WithObserver attaches a flow event observer. A nil observer is ignored.
func WithObserver(o observe.Observer) Option {
	return func(dr *Driver) {
		dr.observer = observe.ObserverOrNoop(o)
	}
}

// WithOnComplete registers a hook run after a task becomes visible.
func WithOnComplete(fn func(domain.GenerationTask)) Option {
	return func(dr *Driver) {
		dr.onComplete = fn
	}
}

// WithOnProgress registers a hook run after every applied tick, including
// the one that reaches 100.
func WithOnProgress(fn func(domain.GenerationProgressState)) Option {
	return func(dr *Driver) {
		dr.onProgress = fn
	}
}

// WithClock overrides the time source used to stamp new tasks.
func WithClock(now func() time.Time) Option {
	return func(dr *Driver) {
		if now != nil {
			dr.now = now
		}
	}
}

// NewDriver creates an idle driver whose visible collection starts as seed,
// which must already be newest first.
func NewDriver(sched schedule.Scheduler, seed []domain.GenerationTask, opts ...Option) *Driver {
	d := &Driver{
		sched:    sched,
		tick:     DefaultTick,
		step:     DefaultStep,
		factory:  PlaceholderFactory,
		observer: observe.NoopObserver{},
		now:      time.Now,
		phase:    domain.PhaseIdle,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.tasks = make([]domain.GenerationTask, len(seed))
	copy(d.tasks, seed)
	return d
}

// Start begins a cycle at 0%. It reports false, changing nothing, when a
// cycle is already running or the driver is closed.
func (d *Driver) Start() bool {
	if d.closed || d.active != nil {
		return false
	}
	d.cycles++
	c := &cycle{id: d.cycles, started: d.now()}
	d.active = c
	d.state = domain.GenerationProgressState{IsGenerating: true, PercentComplete: 0}
	d.phase = domain.PhaseGenerating
	c.handle = d.sched.Every(d.tick, func() { d.advance(c) })

	d.observe("generation_started", nil, 0, map[string]any{"cycle": c.id})
	return true
}

// advance applies one tick. Ticks from anything but the active cycle are
// ignored.
func (d *Driver) advance(c *cycle) {
	if d.active != c {
		return
	}
	c.ticks++
	c.percent = min(c.percent+d.step, 100)
	d.state.PercentComplete = c.percent
	if d.onProgress != nil {
		d.onProgress(d.state)
	}
	if c.percent < 100 {
		return
	}
	d.finish(c)
}

// finish is the terminal transition: the tick handle is stopped
// unconditionally before the new task is materialised.
func (d *Driver) finish(c *cycle) {
	c.handle.Stop()
	d.phase = domain.PhaseComplete

	task, err := d.factory(d.now())
	if err != nil {
		d.active = nil
		d.state = domain.GenerationProgressState{}
		d.phase = domain.PhaseIdle
		d.observe("generation_failed", err, 0, map[string]any{"cycle": c.id})
		return
	}

	d.tasks = append([]domain.GenerationTask{task}, d.tasks...)
	d.active = nil
	d.state.IsGenerating = false
	d.phase = domain.PhaseIdle

	d.observe("generation_completed", nil, d.now().Sub(c.started), map[string]any{
		"cycle": c.id,
		"ticks": c.ticks,
		"task":  task.ID,
	})
	if d.onComplete != nil {
		d.onComplete(task)
	}
}

// Cancel stops the running cycle without producing a task and returns to
// idle at 0%. It reports whether a cycle was running.
func (d *Driver) Cancel() bool {
	c := d.active
	if c == nil {
		return false
	}
	c.handle.Stop()
	d.active = nil
	d.state = domain.GenerationProgressState{}
	d.phase = domain.PhaseIdle
	d.observe("generation_cancelled", nil, 0, map[string]any{
		"cycle":   c.id,
		"percent": c.percent,
	})
	return true
}

// Close cancels any running cycle and rejects further starts.
func (d *Driver) Close() {
	d.Cancel()
	d.closed = true
}

// Closed reports whether Close was called.
func (d *Driver) Closed() bool { return d.closed }

// Tasks returns a copy of the visible collection, newest first.
func (d *Driver) Tasks() []domain.GenerationTask {
	out := make([]domain.GenerationTask, len(d.tasks))
	copy(out, d.tasks)
	return out
}

// State reports whether a cycle is running and how far it has got.
func (d *Driver) State() domain.GenerationProgressState { return d.state }

// Phase returns the current lifecycle phase.
func (d *Driver) Phase() domain.GenerationPhase { return d.phase }

// TicksToComplete is how many ticks a cycle needs at the configured step.
func (d *Driver) TicksToComplete() int {
	return (100 + d.step - 1) / d.step
}

// Tick returns the configured tick interval.
func (d *Driver) Tick() time.Duration { return d.tick }

func (d *Driver) observe(name string, err error, dur time.Duration, fields map[string]any) {
	d.observer.Observe(context.Background(), observe.FlowEvent{
		Name:     name,
		Duration: dur,
		Err:      err,
		Fields:   fields,
	})
}
