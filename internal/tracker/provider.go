// Package tracker implements the learning-time batching provider. It times
// active learning activities, accumulates completed sessions into a pending
// batch, and flushes the batch to the remote collector when it grows large
// or old enough. Batches that fail delivery are parked in the durable
// overflow store and retried when connectivity returns.
package tracker

import (
	"context"
	"sync"
	"time"

	"timesync/internal/domain"
	"timesync/internal/logging"
)

// Default flush policy thresholds
const (
	DefaultFlushInterval = 60 * time.Second
	DefaultMaxBatchSize  = 50
	DefaultMaxBatchAge   = 5 * time.Minute
)

// minSessionLength is the shortest session worth recording. Anything below
// this is treated as an accidental open and discarded.
const minSessionLength = time.Minute

// Submitter delivers a batch of records to the remote collector
type Submitter interface {
	SubmitBatch(ctx context.Context, records []domain.TimeRecord) error
}

// OverflowStore parks records whose delivery failed
type OverflowStore interface {
	Append(ctx context.Context, records []domain.TimeRecord) error
}

// Drainer retries delivery of previously parked records
type Drainer interface {
	Drain(ctx context.Context) (int, error)
}

// Options configures the flush policy of a Provider
type Options struct {
	// FlushInterval is how often the periodic flush check runs
	FlushInterval time.Duration
	// MaxBatchSize triggers a flush when the pending batch reaches it
	MaxBatchSize int
	// MaxBatchAge triggers a flush when the batch has been accumulating this long
	MaxBatchAge time.Duration
	// Now is the clock used for timing; defaults to time.Now
	Now func() time.Time
}

func (o *Options) fillDefaults() {
	if o.FlushInterval <= 0 {
		o.FlushInterval = DefaultFlushInterval
	}
	if o.MaxBatchSize <= 0 {
		o.MaxBatchSize = DefaultMaxBatchSize
	}
	if o.MaxBatchAge <= 0 {
		o.MaxBatchAge = DefaultMaxBatchAge
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Provider owns the active timer set, the pending batch, and the flush
// policy. All methods are safe for concurrent use.
type Provider struct {
	submitter Submitter
	store     OverflowStore
	drainer   Drainer
	opts      Options

	mu             sync.Mutex
	cond           *sync.Cond
	active         map[string]time.Time
	batch          []domain.TimeRecord
	batchStartedAt time.Time
	flushInFlight  bool
	closed         bool

	shutdownComplete chan struct{}
}

// NewProvider constructs a Provider. The drainer may be nil, in which case
// SyncNow only flushes the in-memory batch.
func NewProvider(submitter Submitter, store OverflowStore, drainer Drainer, opts Options) *Provider {
	opts.fillDefaults()
	p := &Provider{
		submitter:        submitter,
		store:            store,
		drainer:          drainer,
		opts:             opts,
		active:           make(map[string]time.Time),
		batchStartedAt:   opts.Now(),
		shutdownComplete: make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// StartTracking records now as the start time for the activity. Starting an
// activity that is already tracked overwrites its start time (last call wins).
func (p *Provider) StartTracking(activityID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.active[activityID] = p.opts.Now()
	activeTimersGauge.Set(float64(len(p.active)))
}

// StopTracking completes the session for the activity. Sessions shorter than
// one minute are discarded. Stopping an untracked activity is a no-op.
func (p *Provider) StopTracking(activityID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked(activityID)
}

// IsTracking reports whether the activity is currently being timed
func (p *Provider) IsTracking(activityID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.active[activityID]
	return ok
}

// GetElapsedTime returns whole seconds elapsed since the activity was
// started, or 0 if it is not being tracked.
func (p *Provider) GetElapsedTime(activityID string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	startedAt, ok := p.active[activityID]
	if !ok {
		return 0
	}
	return int64(p.opts.Now().Sub(startedAt) / time.Second)
}

// ActiveCount returns the number of activities currently being timed
func (p *Provider) ActiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.active)
}

// BatchSize returns the number of records waiting in the pending batch
func (p *Provider) BatchSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.batch)
}

// stopLocked completes a session. Caller holds p.mu.
func (p *Provider) stopLocked(activityID string) {
	startedAt, ok := p.active[activityID]
	if !ok {
		return
	}
	delete(p.active, activityID)
	activeTimersGauge.Set(float64(len(p.active)))

	completedAt := p.opts.Now()
	if completedAt.Sub(startedAt) < minSessionLength {
		recordsDiscardedCounter.Inc()
		logging.Debugf("tracker: discarding sub-minute session for %s\n", activityID)
		return
	}

	p.batch = append(p.batch, domain.NewTimeRecord(activityID, startedAt, completedAt))
	recordsRecordedCounter.Inc()
	batchSizeGauge.Set(float64(len(p.batch)))
}

// Run launches the periodic flush loop. It should be called in a goroutine
// and runs until ctx is cancelled.
func (p *Provider) Run(ctx context.Context) {
	ticker := time.NewTicker(p.opts.FlushInterval)
	defer func() {
		ticker.Stop()
		close(p.shutdownComplete)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Wait blocks until the flush loop has stopped
func (p *Provider) Wait() {
	<-p.shutdownComplete
}

// Tick runs one flush policy check: the batch is submitted when it has
// reached MaxBatchSize records or has been accumulating for MaxBatchAge.
func (p *Provider) Tick(ctx context.Context) {
	p.mu.Lock()
	if len(p.batch) == 0 {
		p.mu.Unlock()
		return
	}
	now := p.opts.Now()
	if len(p.batch) < p.opts.MaxBatchSize && now.Sub(p.batchStartedAt) < p.opts.MaxBatchAge {
		p.mu.Unlock()
		return
	}
	p.flushLocked(ctx)
}

// SyncNow drains the overflow store, then runs an immediate flush policy
// check for records accumulated while offline. Used on reconnect and by the
// CLI. Best-effort: a failed drain leaves the store for the next attempt.
func (p *Provider) SyncNow(ctx context.Context) {
	if p.drainer != nil {
		if _, err := p.drainer.Drain(ctx); err != nil {
			logging.Debugf("tracker: overflow drain failed: %v\n", err)
		}
	}
	p.Tick(ctx)
}

// Close force-stops every active timer, sweeping any session of a minute or
// more into the batch, and makes one final synchronous flush attempt
// regardless of the flush thresholds. Start and tick calls after Close are
// no-ops.
func (p *Provider) Close(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true

	for activityID := range p.active {
		p.stopLocked(activityID)
	}

	// Let any in-flight flush finish so the final batch is not skipped
	for p.flushInFlight {
		p.cond.Wait()
	}
	p.flushLocked(ctx)
}

// flushLocked submits the current batch and reacts to the outcome. Called
// with p.mu held; the lock is released before the collector call and the
// in-flight guard keeps overlapping ticks from double-submitting. The batch
// is cleared and batchStartedAt reset whether delivery succeeds or fails.
func (p *Provider) flushLocked(ctx context.Context) {
	if p.flushInFlight {
		flushSkippedCounter.Inc()
		p.mu.Unlock()
		return
	}

	records := p.batch
	p.batch = nil
	p.batchStartedAt = p.opts.Now()
	p.flushInFlight = true
	batchSizeGauge.Set(0)
	p.mu.Unlock()

	p.deliver(ctx, records)

	p.mu.Lock()
	p.flushInFlight = false
	p.cond.Broadcast()
	p.mu.Unlock()
}

// deliver submits records to the collector and parks them in the overflow
// store on failure. Failures never propagate to the caller; this is
// fire-and-forget telemetry, not a critical transaction.
func (p *Provider) deliver(ctx context.Context, records []domain.TimeRecord) {
	if len(records) == 0 {
		return
	}

	start := time.Now()
	err := p.submitter.SubmitBatch(ctx, records)
	flushDuration.Observe(time.Since(start).Seconds())

	if err == nil {
		recordsDeliveredCounter.Add(float64(len(records)))
		logging.Debugf("tracker: flushed %d records\n", len(records))
		return
	}

	recordsFlushFailedCounter.Add(float64(len(records)))
	logging.Debugf("tracker: flush failed, parking %d records: %v\n", len(records), err)

	if storeErr := p.store.Append(ctx, records); storeErr != nil {
		// Both the flush and the overflow write failed. The records are
		// dropped; losing them beats blocking the host application.
		overflowAppendFailures.Add(float64(len(records)))
		logging.Debugf("tracker: overflow write failed, dropping %d records: %v\n", len(records), storeErr)
		return
	}
	overflowParkedCounter.Add(float64(len(records)))
}
