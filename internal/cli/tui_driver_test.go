package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/studyai/internal/schedule"
	"github.com/alexanderramin/studyai/internal/teatest"
	"github.com/alexanderramin/studyai/internal/testutil"
)

// TestDriver wraps teatest.Driver with StudyAI-specific inspection methods.
// It provides access to appModel internals (view stack, shared state) that
// the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App. Every timer in the
// model runs on a manual clock starting at testutil.SeedTime.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	clock := schedule.NewManual(testutil.SeedTime)
	app.Now = clock.Now
	app.TUIObserver = app.Observer

	m := newAppModel(app, clock)
	t.Cleanup(m.state.Close)

	d := teatest.New(t, m, teatest.WithSize(120, 40), teatest.WithClock(clock))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Drop pastes paths the way a terminal delivers a file drop.
func (d *TestDriver) Drop(paths ...string) {
	d.T.Helper()
	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = "'" + p + "'"
	}
	d.Paste(strings.Join(quoted, " "))
}

// Tick advances the clock by n generation ticks.
func (d *TestDriver) Tick(n int) {
	d.T.Helper()
	d.Advance(time.Duration(n)*d.State().Generator.Tick(), nil)
}

// ── StudyAI-specific inspection ──────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
