// Package connectivity watches collector reachability and signals when the
// connection comes back so queued records can be synced.
package connectivity

import (
	"context"
	"sync"
	"time"

	"timesync/internal/logging"
)

// Pinger probes the remote collector
type Pinger interface {
	Ping(ctx context.Context) error
}

// Watcher probes the collector health endpoint on an interval and invokes
// the onOnline callback on every offline-to-online transition.
//
// A new watcher starts in the offline state, so records left behind by a
// previous run are synced on the first successful probe.
type Watcher struct {
	pinger   Pinger
	interval time.Duration
	onOnline func(context.Context)

	mu     sync.Mutex
	online bool

	shutdownComplete chan struct{}
}

// NewWatcher creates a connectivity watcher. onOnline may be nil.
func NewWatcher(pinger Pinger, interval time.Duration, onOnline func(context.Context)) *Watcher {
	return &Watcher{
		pinger:           pinger,
		interval:         interval,
		onOnline:         onOnline,
		shutdownComplete: make(chan struct{}),
	}
}

// Run launches the probe loop. It should be called in a goroutine and runs
// until ctx is cancelled. The first probe happens immediately so a startup
// backlog does not wait a full interval.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer func() {
		ticker.Stop()
		close(w.shutdownComplete)
	}()

	w.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.probe(ctx)
		}
	}
}

// Wait blocks until the probe loop has stopped
func (w *Watcher) Wait() {
	<-w.shutdownComplete
}

// Online reports the result of the most recent probe
func (w *Watcher) Online() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.online
}

func (w *Watcher) probe(ctx context.Context) {
	err := w.pinger.Ping(ctx)

	w.mu.Lock()
	wasOnline := w.online
	w.online = err == nil
	nowOnline := w.online
	w.mu.Unlock()

	if !wasOnline && nowOnline {
		logging.Debugln("connectivity: collector reachable, triggering sync")
		if w.onOnline != nil {
			w.onOnline(ctx)
		}
	}
}
