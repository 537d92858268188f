// Package watch triggers sweep passes when the task file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/seojin/tasksweep/internal/sweep"
)

// Watcher watches the task file and runs a sweep pass after each change,
// debounced so editor save bursts collapse into one pass. The watch is on
// the containing directory rather than the file itself so atomic saves
// (write to temp, rename over the original) keep working.
//
// A sweep's own write to the task file fires the watcher again; that
// follow-up pass finds no completed tasks and writes nothing, which is
// what stops the cycle.
type Watcher struct {
	sweeper  *sweep.Sweeper
	logger   *log.Logger
	path     string
	debounce time.Duration
}

// New creates a watcher for the given task file path.
func New(s *sweep.Sweeper, logger *log.Logger, path string, debounce time.Duration) *Watcher {
	return &Watcher{
		sweeper:  s,
		logger:   logger,
		path:     filepath.Clean(path),
		debounce: debounce,
	}
}

// Run watches until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Info("watching task file", "path", w.path)

	// Stopped timer; armed on the first relevant event.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change detected", "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)

		case <-timer.C:
			if _, err := w.sweeper.Sweep(); err != nil {
				w.logger.Error("sweep failed", "err", err)
			}
		}
	}
}

// relevant reports whether the event is a content change of the task file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
