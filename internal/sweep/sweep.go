// Package sweep orchestrates extract-then-merge passes over the task and
// archive files.
package sweep

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/seojin/tasksweep/internal/config"
	"github.com/seojin/tasksweep/internal/notify"
	"github.com/seojin/tasksweep/internal/task"
)

// Sweeper runs processing passes against the configured task and archive
// files. Each pass reads a full document, computes new content, and issues
// a full-document write; there are no partial writes and no retries.
type Sweeper struct {
	cfg      *config.Config
	logger   *log.Logger
	notifier notify.Notifier

	// Now returns the current time. Overridable in tests; nil means
	// time.Now.
	Now func() time.Time
}

// New creates a sweeper bound to the given configuration.
func New(cfg *config.Config, logger *log.Logger) *Sweeper {
	return &Sweeper{
		cfg:      cfg,
		logger:   logger,
		notifier: notify.Notifier{Enabled: cfg.Notify},
	}
}

func (s *Sweeper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Sweep runs one extraction pass: completed tasks are removed from the
// task file (recurring ones rewritten for the next day) and recorded in
// the archive under today's date header. It returns the number of archived
// tasks. A missing task file and a pass with nothing completed are both
// no-ops: in those cases neither file is written, which is what keeps a
// sweep-triggered change notification from re-triggering forever.
func (s *Sweeper) Sweep() (int, error) {
	data, err := os.ReadFile(s.cfg.TaskFile)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("task file missing, nothing to sweep", "path", s.cfg.TaskFile)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read task file: %w", err)
	}

	today := s.now()
	res := task.Extract(task.SplitLines(string(data)), today, s.cfg.DateFormat, s.cfg.Labels())
	if len(res.Completed) == 0 {
		s.logger.Debug("no completed tasks")
		return 0, nil
	}

	if err := os.WriteFile(s.cfg.TaskFile, []byte(task.JoinLines(res.Keep)), 0644); err != nil {
		return 0, fmt.Errorf("write task file: %w", err)
	}

	archive, err := s.readArchive()
	if err != nil {
		return 0, err
	}
	merged := task.Merge(archive, res.Completed, task.DateHeader(today, s.cfg.DateFormat))
	if err := os.WriteFile(s.cfg.DoneFile, []byte(task.JoinLines(merged)), 0644); err != nil {
		return 0, fmt.Errorf("write archive file: %w", err)
	}

	count := len(res.Completed)
	s.logger.Info("archived completed tasks", "count", count, "archive", s.cfg.DoneFile)
	if err := s.notifier.Archived(count); err != nil {
		s.logger.Warn("notification failed", "err", err)
	}
	return count, nil
}

// Roll runs the repeat-date check: checked tasks in the recurring section
// scheduled for today are flipped back to unchecked. The task file is only
// written when something changed.
func (s *Sweeper) Roll() (bool, error) {
	data, err := os.ReadFile(s.cfg.TaskFile)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("task file missing, nothing to roll", "path", s.cfg.TaskFile)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read task file: %w", err)
	}

	updated, changed := task.RollCompletedToday(task.SplitLines(string(data)), s.now(), s.cfg.DateFormat, s.cfg.Labels())
	if !changed {
		return false, nil
	}

	if err := os.WriteFile(s.cfg.TaskFile, []byte(task.JoinLines(updated)), 0644); err != nil {
		return false, fmt.Errorf("write task file: %w", err)
	}
	s.logger.Info("rolled recurring tasks forward", "path", s.cfg.TaskFile)
	return true, nil
}

// readArchive reads the archive file; a missing file is an empty archive.
func (s *Sweeper) readArchive() ([]string, error) {
	data, err := os.ReadFile(s.cfg.DoneFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read archive file: %w", err)
	}
	return task.SplitLines(string(data)), nil
}
