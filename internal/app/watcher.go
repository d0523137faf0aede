package app

import (
	"context"
	"log"
	"time"

	"github.com/lurkd/lurk/internal/config"
	"github.com/lurkd/lurk/internal/state"
)

const defaultWatchInterval = 3 * time.Second

// Watcher re-reads the configuration document on a fixed cadence and folds
// changes into the shared state without losing live channel data.
type Watcher struct {
	store    *state.Store
	loader   config.Loader
	sink     Sink
	wake     chan<- struct{}
	interval time.Duration
}

// NewWatcher builds a Watcher. interval <= 0 selects the 3s default.
func NewWatcher(store *state.Store, loader config.Loader, sink Sink, wake chan<- struct{}, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	if sink == nil {
		sink = NopSink{}
	}
	return &Watcher{
		store:    store,
		loader:   loader,
		sink:     sink,
		wake:     wake,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled. Read or parse failures after the first
// load are tolerated: the cycle is skipped and existing state stays intact.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check()
		}
	}
}

// check performs one reload cycle: load a candidate outside the lock,
// compare structurally, and merge only on a real change.
func (w *Watcher) check() {
	snap := w.store.Snapshot()

	candidate, err := w.loader.Load()
	if err != nil {
		// The document may be mid-edit; retry next interval.
		log.Printf("config re-check failed: %v", err)
		return
	}

	if state.Equal(snap, candidate) {
		return
	}

	w.store.Mutate(func(st *state.State) {
		*st = state.Merge(*st, candidate)
	})

	w.wakePoller()
	w.sink.StateChanged()
}

// wakePoller nudges the poller so the new channel set is reconciled on its
// next cycle instead of after a full idle interval. The slot holds one
// pending wake; coalescing is fine because the poller's own timer is the
// fallback.
func (w *Watcher) wakePoller() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}
