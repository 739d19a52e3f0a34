package outbox

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is how long the watcher waits for more changes before
// syncing, so a burst of writes triggers a single pass.
const defaultDebounce = 500 * time.Millisecond

// Watcher is an explicit opt-in sync policy: it watches the drafts
// directory and syncs whenever draft files appear or change. The default
// outbox behavior stays manual; the watcher only runs when the user starts
// it (logbook sync --watch).
type Watcher struct {
	manager  *Manager
	debounce time.Duration
	logger   *slog.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long to wait for further changes before syncing.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithWatchLogger sets the logger.
func WithWatchLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// NewWatcher creates a watcher over the manager's drafts directory.
func NewWatcher(manager *Manager, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		manager:  manager,
		debounce: defaultDebounce,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is canceled. It syncs once at startup to drain
// anything queued before the watcher began, then again after each
// debounced burst of draft file changes.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.manager.Dir()); err != nil {
		return err
	}

	w.syncPass(ctx)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			// Only creations and writes can add work; removes and our own
			// status rewrites during a sync pass would otherwise retrigger.
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Draft watcher error", "error", err)

		case <-timerC:
			timer = nil
			timerC = nil
			w.syncPass(ctx)
		}
	}
}

func (w *Watcher) syncPass(ctx context.Context) {
	synced, err := w.manager.SyncPending(ctx)
	if err != nil && ctx.Err() == nil {
		w.logger.Warn("Sync pass failed", "error", err)
		return
	}
	if synced > 0 {
		w.logger.Info("Sync pass complete", "synced", synced)
	}
}
