package backendsvc

import (
	"context"
	"sync"
	"time"

	"github.com/mentoralabs/mentora/core"
	"github.com/mentoralabs/mentora/core/course"
)

// Watcher re-fetches a course on a fixed cadence while the backend generates
// chapters, since the creation stream is abandoned after the first record.
// The backend only appends chapters, so each snapshot can be merged with a
// simple monotonic-growth rule on the caller's side (course.View).
type Watcher struct {
	client   *Client
	interval time.Duration
	budget   time.Duration
	logger   core.Logger
}

func NewWatcher(client *Client, conf *core.Config, logger core.Logger) *Watcher {
	return &Watcher{
		client:   client,
		interval: conf.Backend.PollInterval,
		budget:   conf.Backend.PollBudget,
		logger:   logger,
	}
}

// WatchHandle is a cancellable scheduled task. Stop is idempotent and safe
// from any goroutine; after Stop returns no further snapshots are delivered.
type WatchHandle struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once

	mu  sync.Mutex
	err error
}

// Stop cancels the watch and waits for the watch goroutine to exit.
// It must not be called from within the snapshot callback; cancel the
// context instead when stopping from there.
func (h *WatchHandle) Stop() {
	h.once.Do(func() { close(h.stop) })
	<-h.done
}

// Done is closed once the watch has fully terminated.
func (h *WatchHandle) Done() <-chan struct{} { return h.done }

// Err reports the fetch error that stopped the watch, if any.
func (h *WatchHandle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *WatchHandle) setErr(err error) {
	h.mu.Lock()
	h.err = err
	h.mu.Unlock()
}

func (h *WatchHandle) stopped() bool {
	select {
	case <-h.stop:
		return true
	default:
		return false
	}
}

// Watch polls the course until it reaches a terminal status, the wall-clock
// budget elapses, a fetch fails (logged, not retried) or the handle/context
// is cancelled. Each fetched snapshot is handed to fn from the watch
// goroutine; fn is never called after the handle is stopped.
func (w *Watcher) Watch(ctx context.Context, courseID string, fn func(course.Course)) *WatchHandle {
	handle := &WatchHandle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(handle.done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		deadline := time.NewTimer(w.budget)
		defer deadline.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-handle.stop:
				return
			case <-deadline.C:
				w.logger.Warn("course watch gave up after " + w.budget.String() + ": " + courseID)
				return
			case <-ticker.C:
			}

			crs, err := w.client.GetCourse(ctx, courseID)
			if err != nil {
				w.logger.Error("fetching course during watch", err)
				handle.setErr(err)
				return
			}
			// a Stop that raced with the fetch wins; drop the snapshot
			if handle.stopped() || ctx.Err() != nil {
				return
			}
			fn(crs)
			if crs.Status.Terminal() {
				return
			}
		}
	}()
	return handle
}
