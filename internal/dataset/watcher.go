package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDelay coalesces the burst of filesystem events an editor or copy
// produces for a single save into one reload.
const reloadDelay = 200 * time.Millisecond

// Watcher reloads the dataset file when it changes on disk and swaps the new
// snapshot into the store. A reload that fails leaves the previous snapshot
// in place.
type Watcher struct {
	logger *zap.Logger
	store  *Store
	path   string
	fsw    *fsnotify.Watcher
	onSwap func(*Snapshot)
}

// NewWatcher starts watching the directory containing path. The onSwap
// callback, if non-nil, runs after each successful swap.
func NewWatcher(logger *zap.Logger, store *Store, path string, onSwap func(*Snapshot)) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem watcher: %w", err)
	}

	// Watching the parent directory instead of the file itself survives the
	// rename-and-replace sequence most editors use when saving.
	clean := filepath.Clean(path)
	if err := fsw.Add(filepath.Dir(clean)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch directory of %s: %w", clean, err)
	}

	return &Watcher{
		logger: logger,
		store:  store,
		path:   clean,
		fsw:    fsw,
		onSwap: onSwap,
	}, nil
}

// Run processes filesystem events until ctx is cancelled or the watcher is
// closed.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.matches(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(reloadDelay)
			timerC = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("filesystem watch error",
				zap.String("op", "dataset.Watcher.Run"),
				zap.String("path", w.path),
				zap.Error(err),
			)
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	snap, err := Load(w.logger, w.path)
	if err != nil {
		w.logger.Warn("dataset reload failed, keeping previous snapshot",
			zap.String("op", "dataset.Watcher.reload"),
			zap.String("path", w.path),
			zap.Error(err),
		)
		return
	}

	w.store.Swap(snap)
	w.logger.Info(fmt.Sprintf("dataset reloaded with %d records", snap.Len()),
		zap.String("op", "dataset.Watcher.reload"),
		zap.String("path", w.path),
	)
	if w.onSwap != nil {
		w.onSwap(snap)
	}
}
