package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop is a wall-clock Scheduler. Timer goroutines never run callbacks
// themselves: they post them to a single consumer, either Run or the post
// function given to NewPosting (for example a bubbletea program's Send).
// A handle stopped on the consumer goroutine never runs afterwards, even if
// its callback was already posted.
type Loop struct {
	post  func(func())
	queue chan func()
	quit  chan struct{}
	once  sync.Once

	mu      sync.Mutex
	handles map[*loopHandle]struct{}
	closed  bool
}

// NewLoop creates a Loop whose callbacks run inside Run.
func NewLoop() *Loop {
	l := &Loop{
		queue:   make(chan func(), 64),
		quit:    make(chan struct{}),
		handles: make(map[*loopHandle]struct{}),
	}
	l.post = l.enqueue
	return l
}

// NewPosting creates a Loop that hands callbacks to post. post is called
// from timer goroutines and must be safe for concurrent use.
func NewPosting(post func(func())) *Loop {
	return &Loop{
		post:    post,
		quit:    make(chan struct{}),
		handles: make(map[*loopHandle]struct{}),
	}
}

// Post queues fn to run on the consumer goroutine.
func (l *Loop) Post(fn func()) {
	l.post(fn)
}

// Run executes posted callbacks until ctx is done. Only loops created with
// NewLoop can be run.
func (l *Loop) Run(ctx context.Context) error {
	if l.queue == nil {
		panic("schedule: Run called on a posting loop")
	}
	for {
		select {
		case <-ctx.Done():
			l.Close()
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

// Close stops every live handle. Scheduling after Close returns handles that
// never fire.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	handles := make([]*loopHandle, 0, len(l.handles))
	for h := range l.handles {
		handles = append(handles, h)
	}
	l.mu.Unlock()
	for _, h := range handles {
		h.Stop()
	}
	l.once.Do(func() { close(l.quit) })
}

func (l *Loop) enqueue(fn func()) {
	select {
	case l.queue <- fn:
	case <-l.quit:
	}
}

func (l *Loop) After(d time.Duration, fn func()) Handle {
	h := l.track()
	if h.stopped.Load() {
		return h
	}
	h.timer = time.AfterFunc(d, func() {
		l.post(func() {
			if h.stopped.Load() || h.fired.Swap(true) {
				return
			}
			l.untrack(h)
			fn()
		})
	})
	return h
}

func (l *Loop) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		panic("schedule: non-positive interval for Every")
	}
	h := l.track()
	if h.stopped.Load() {
		return h
	}
	h.ticker = time.NewTicker(interval)
	h.done = make(chan struct{})
	go func(ticker *time.Ticker, done <-chan struct{}) {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				l.post(func() {
					if h.stopped.Load() {
						return
					}
					fn()
				})
			}
		}
	}(h.ticker, h.done)
	return h
}

func (l *Loop) track() *loopHandle {
	h := &loopHandle{loop: l}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		h.stopped.Store(true)
		return h
	}
	l.handles[h] = struct{}{}
	return h
}

func (l *Loop) untrack(h *loopHandle) {
	l.mu.Lock()
	delete(l.handles, h)
	l.mu.Unlock()
}

type loopHandle struct {
	loop    *Loop
	timer   *time.Timer
	ticker  *time.Ticker
	done    chan struct{}
	stopped atomic.Bool
	fired   atomic.Bool
}

func (h *loopHandle) Stop() bool {
	if h.stopped.Swap(true) {
		return false
	}
	h.loop.untrack(h)
	if h.timer != nil {
		h.timer.Stop()
	}
	if h.ticker != nil {
		h.ticker.Stop()
		close(h.done)
	}
	return !h.fired.Load()
}
