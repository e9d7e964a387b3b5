package schedule

import "time"

// Manual is a virtual clock. Callbacks only run inside Advance or Step, on
// the caller's goroutine, in due-time order; equal due times fire in the
// order they were scheduled.
type Manual struct {
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	owner   *Manual
	due     time.Time
	every   time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// NewManual creates a virtual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	return m.add(d, 0, fn)
}

// Every panics on a non-positive interval, like time.NewTicker.
func (m *Manual) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		panic("schedule: non-positive interval for Every")
	}
	return m.add(interval, interval, fn)
}

func (m *Manual) add(d, every time.Duration, fn func()) *manualTask {
	m.seq++
	t := &manualTask{
		owner: m,
		due:   m.now.Add(d),
		every: every,
		seq:   m.seq,
		fn:    fn,
	}
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that falls
// due on the way. Callbacks scheduled by callbacks fire too if they fall
// due within the window. It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now.Add(d)
	fired := 0
	for {
		t := m.next()
		if t == nil || t.due.After(target) {
			break
		}
		m.fire(t)
		fired++
	}
	m.now = target
	return fired
}

// Step jumps to the next due callback and fires it. It returns false when
// nothing is scheduled.
func (m *Manual) Step() bool {
	t := m.next()
	if t == nil {
		return false
	}
	m.fire(t)
	return true
}

// Pending reports how many handles are still live.
func (m *Manual) Pending() int {
	return len(m.tasks)
}

// NextDue returns the due time of the earliest live callback.
func (m *Manual) NextDue() (time.Time, bool) {
	t := m.next()
	if t == nil {
		return time.Time{}, false
	}
	return t.due, true
}

func (m *Manual) next() *manualTask {
	var best *manualTask
	for _, t := range m.tasks {
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *Manual) fire(t *manualTask) {
	if t.due.After(m.now) {
		m.now = t.due
	}
	if t.every > 0 {
		m.seq++
		t.seq = m.seq
		t.due = t.due.Add(t.every)
	} else {
		t.fired = true
		m.remove(t)
	}
	t.fn()
}

func (m *Manual) remove(t *manualTask) {
	for i, x := range m.tasks {
		if x == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return
		}
	}
}

func (t *manualTask) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.owner.remove(t)
	return true
}
