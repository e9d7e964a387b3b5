// Package intake validates submitted documents and simulates their
// processing.
package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studyai/internal/domain"
	"github.com/alexanderramin/studyai/internal/notice"
	"github.com/alexanderramin/studyai/internal/observe"
	"github.com/alexanderramin/studyai/internal/schedule"
	mapset "github.com/deckarep/golang-set/v2"
)

// DefaultProcessingDelay is how long a simulated batch takes to process.
const DefaultProcessingDelay = 2 * time.Second

// Candidate is one file-like input offered to the collector.
type Candidate struct {
	Name      string
	MediaType string
	SizeBytes int64
}

// Collector owns the visible intake collection and its processing state.
// It is not safe for concurrent use: call it from the goroutine its
// scheduler delivers callbacks on.
type Collector struct {
	sched    schedule.Scheduler
	notifier notice.Notifier
	observer observe.Observer
	delay    time.Duration
	allow    mapset.Set[domain.MimeCategory]

	items   []domain.IntakeItem
	state   domain.IntakeBatchState
	pending map[uint64]*pendingBatch
	lastSeq uint64
	closed  bool
}

type pendingBatch struct {
	seq    uint64
	size   int
	handle schedule.Handle
}

// Option configures a Collector.
type Option func(*Collector)

// WithProcessingDelay overrides DefaultProcessingDelay. Negative values are
// treated as zero.
func WithProcessingDelay(d time.Duration) Option {
	return func(c *Collector) {
		if d < 0 {
			d = 0
		}
		c.delay = d
	}
}

// WithAllowlist replaces the accepted categories. CategoryUnknown is never
// accepted.
func WithAllowlist(cats ...domain.MimeCategory) Option {
	return func(c *Collector) {
		c.allow = mapset.NewThreadUnsafeSet(cats...)
		c.allow.Remove(domain.CategoryUnknown)
	}
}

// WithObserver attaches a flow event observer.
func WithObserver(o observe.Observer) Option {
	return func(c *Collector) {
		c.observer = observe.ObserverOrNoop(o)
	}
}

// NewCollector creates an empty collector. A nil notifier discards notices.
func NewCollector(sched schedule.Scheduler, notifier notice.Notifier, opts ...Option) *Collector {
	if notifier == nil {
		notifier = notice.Discard
	}
	c := &Collector{
		sched:    sched,
		notifier: notifier,
		observer: observe.NoopObserver{},
		delay:    DefaultProcessingDelay,
		allow:    mapset.NewThreadUnsafeSet(domain.AcceptedCategories...),
		pending:  make(map[uint64]*pendingBatch),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit validates a batch. When no candidate is acceptable it returns a
// *ValidationError, emits one destructive notice and leaves the collection
// untouched. Otherwise every acceptable candidate is appended in order, the
// processing flag is raised, and a completion is scheduled for the batch.
func (c *Collector) Submit(batch []Candidate) ([]domain.IntakeItem, error) {
	if c.closed {
		return nil, ErrClosed
	}

	accepted := make([]domain.IntakeItem, 0, len(batch))
	var rejected []string
	for _, cand := range batch {
		item, ok := c.accept(cand)
		if !ok {
			rejected = append(rejected, cand.Name)
			continue
		}
		accepted = append(accepted, item)
	}

	if len(accepted) == 0 {
		err := &ValidationError{Rejected: rejected}
		c.notifier.Notify(notice.Destructive(
			"Invalid file type",
			"Please upload PDF, text, or document files.",
		))
		c.observe("intake_batch", err, map[string]any{
			"submitted": len(batch),
			"accepted":  0,
		})
		return nil, err
	}

	c.items = append(c.items, accepted...)
	c.lastSeq++
	b := &pendingBatch{seq: c.lastSeq, size: len(accepted)}
	c.pending[b.seq] = b
	c.state.IsProcessing = true
	c.state.PendingCount += b.size
	b.handle = c.sched.After(c.delay, func() { c.complete(b) })

	c.observe("intake_batch", nil, map[string]any{
		"batch":     b.seq,
		"submitted": len(batch),
		"accepted":  len(accepted),
		"rejected":  len(rejected),
	})

	out := make([]domain.IntakeItem, len(accepted))
	copy(out, accepted)
	return out, nil
}

func (c *Collector) accept(cand Candidate) (domain.IntakeItem, bool) {
	if cand.SizeBytes < 0 {
		return domain.IntakeItem{}, false
	}
	cat := domain.ClassifyMediaType(cand.MediaType)
	if cat == domain.CategoryUnknown || !c.allow.Contains(cat) {
		return domain.IntakeItem{}, false
	}
	return domain.IntakeItem{
		Name:      cand.Name,
		SizeBytes: cand.SizeBytes,
		Category:  cat,
		MediaType: domain.BareMediaType(cand.MediaType),
	}, true
}

// complete runs when a batch's simulated processing ends. Only the most
// recently scheduled batch may clear the processing flag.
func (c *Collector) complete(b *pendingBatch) {
	if c.closed {
		return
	}
	if _, ok := c.pending[b.seq]; !ok {
		return
	}
	delete(c.pending, b.seq)
	c.state.PendingCount -= b.size
	if b.seq == c.lastSeq {
		c.state.IsProcessing = false
	}

	c.notifier.Notify(notice.Info(
		"Documents processed",
		fmt.Sprintf("%d document(s) uploaded successfully.", b.size),
	))
	c.observe("intake_processed", nil, map[string]any{
		"batch":    b.seq,
		"accepted": b.size,
		"pending":  c.state.PendingCount,
	})
}

// Items returns a copy of the visible collection in submission order.
func (c *Collector) Items() []domain.IntakeItem {
	out := make([]domain.IntakeItem, len(c.items))
	copy(out, c.items)
	return out
}

// State returns the current processing state.
func (c *Collector) State() domain.IntakeBatchState {
	return c.state
}

// ProcessingDelay returns the configured simulated delay.
func (c *Collector) ProcessingDelay() time.Duration {
	return c.delay
}

// Reset empties the collection and cancels every in-flight batch. Cancelled
// batches produce no notice.
func (c *Collector) Reset() {
	c.stopPending()
	c.items = nil
	c.state = domain.IntakeBatchState{}
}

// Close tears the collector down. Pending completions never fire and later
// submissions fail with ErrClosed.
func (c *Collector) Close() {
	if c.closed {
		return
	}
	c.stopPending()
	c.state = domain.IntakeBatchState{}
	c.closed = true
}

func (c *Collector) stopPending() {
	for seq, b := range c.pending {
		b.handle.Stop()
		delete(c.pending, seq)
	}
}

func (c *Collector) observe(name string, err error, fields map[string]any) {
	c.observer.Observe(context.Background(), observe.FlowEvent{Name: name, Err: err, Fields: fields})
}
