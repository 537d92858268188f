package sweep

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/seojin/tasksweep/internal/config"
	"github.com/seojin/tasksweep/internal/logging"
)

func newTestSweeper(t *testing.T) (*Sweeper, *config.Config) {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := &config.Config{
		TaskFile:         filepath.Join(tmpDir, "task.md"),
		DoneFile:         filepath.Join(tmpDir, "task_done.md"),
		RecurringSection: "Recurring",
		GeneralSection:   "Tasks",
	}
	s := New(cfg, logging.NewTestLogger(io.Discard))
	s.Now = func() time.Time {
		return time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	}
	return s, cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestSweepArchivesPlainTask(t *testing.T) {
	s, cfg := newTestSweeper(t)
	writeFile(t, cfg.TaskFile, "### Tasks\n- [x] Ship it\n- [ ] Rest\n")

	count, err := s.Sweep()
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count: got %d, want 1", count)
	}

	wantTask := "### Tasks\n- [ ] Rest\n"
	if got := readFile(t, cfg.TaskFile); got != wantTask {
		t.Errorf("task file: got %q, want %q", got, wantTask)
	}

	wantDone := "### 2024-01-02\n- [x] Ship it\n"
	if got := readFile(t, cfg.DoneFile); got != wantDone {
		t.Errorf("archive file: got %q, want %q", got, wantDone)
	}
}

func TestSweepReschedulesRecurringTask(t *testing.T) {
	s, cfg := newTestSweeper(t)
	writeFile(t, cfg.TaskFile, "### Recurring\n- [x] Drink water (2024-01-01)\n")

	if _, err := s.Sweep(); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	wantTask := "### Recurring\n- [ ] Drink water (2024-01-03)\n"
	if got := readFile(t, cfg.TaskFile); got != wantTask {
		t.Errorf("task file: got %q, want %q", got, wantTask)
	}

	wantDone := "### 2024-01-02\n- [x] Drink water (2024-01-01)\n"
	if got := readFile(t, cfg.DoneFile); got != wantDone {
		t.Errorf("archive file: got %q, want %q", got, wantDone)
	}
}

func TestSweepAppendsToExistingDateSection(t *testing.T) {
	s, cfg := newTestSweeper(t)
	writeFile(t, cfg.TaskFile, "### Tasks\n- [x] Second task\n")
	writeFile(t, cfg.DoneFile, "### 2024-01-02\n- [x] First task\n\n### 2024-01-01\n- [x] Old task\n")

	if _, err := s.Sweep(); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	// New lines are inserted immediately before the next header, so the
	// blank separator that was inside the section stays where it was.
	wantDone := "### 2024-01-02\n- [x] First task\n\n- [x] Second task\n### 2024-01-01\n- [x] Old task\n"
	if got := readFile(t, cfg.DoneFile); got != wantDone {
		t.Errorf("archive file: got %q, want %q", got, wantDone)
	}
}

func TestSweepNoCompletedTasksIsNoOp(t *testing.T) {
	s, cfg := newTestSweeper(t)
	content := "### Tasks\n- [ ] Pending\n"
	writeFile(t, cfg.TaskFile, content)

	count, err := s.Sweep()
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if count != 0 {
		t.Errorf("count: got %d, want 0", count)
	}
	if got := readFile(t, cfg.TaskFile); got != content {
		t.Errorf("task file rewritten: got %q, want untouched %q", got, content)
	}
	if _, err := os.Stat(cfg.DoneFile); !os.IsNotExist(err) {
		t.Error("archive file was created on a no-op pass")
	}
}

func TestSweepMissingTaskFileIsSkipped(t *testing.T) {
	s, cfg := newTestSweeper(t)

	count, err := s.Sweep()
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}
	if count != 0 {
		t.Errorf("count: got %d, want 0", count)
	}
	if _, err := os.Stat(cfg.DoneFile); !os.IsNotExist(err) {
		t.Error("archive file was created without a task file")
	}
}

func TestSweepTwiceDoesNotDuplicate(t *testing.T) {
	s, cfg := newTestSweeper(t)
	writeFile(t, cfg.TaskFile, "### Recurring\n- [x] Drink water (2024-01-01)\n### Tasks\n- [x] Ship it\n")

	if _, err := s.Sweep(); err != nil {
		t.Fatalf("first Sweep failed: %v", err)
	}
	firstDone := readFile(t, cfg.DoneFile)
	firstTask := readFile(t, cfg.TaskFile)

	count, err := s.Sweep()
	if err != nil {
		t.Fatalf("second Sweep failed: %v", err)
	}
	if count != 0 {
		t.Errorf("second sweep count: got %d, want 0", count)
	}
	if got := readFile(t, cfg.DoneFile); got != firstDone {
		t.Errorf("archive changed on second sweep:\n got %q\nwant %q", got, firstDone)
	}
	if got := readFile(t, cfg.TaskFile); got != firstTask {
		t.Errorf("task file changed on second sweep:\n got %q\nwant %q", got, firstTask)
	}
}

func TestSweepCustomDateFormat(t *testing.T) {
	s, cfg := newTestSweeper(t)
	cfg.DateFormat = "DD/MM/YYYY"
	writeFile(t, cfg.TaskFile, "### Tasks\n- [x] Ship it\n")

	if _, err := s.Sweep(); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	wantDone := "### 02/01/2024\n- [x] Ship it\n"
	if got := readFile(t, cfg.DoneFile); got != wantDone {
		t.Errorf("archive file: got %q, want %q", got, wantDone)
	}
}

func TestRoll(t *testing.T) {
	s, cfg := newTestSweeper(t)
	writeFile(t, cfg.TaskFile, "### Recurring\n- [x] Drink water (2024-01-02)\n")

	changed, err := s.Roll()
	if err != nil {
		t.Fatalf("Roll failed: %v", err)
	}
	if !changed {
		t.Fatal("changed: got false, want true")
	}

	wantTask := "### Recurring\n- [ ] Drink water (2024-01-02)\n"
	if got := readFile(t, cfg.TaskFile); got != wantTask {
		t.Errorf("task file: got %q, want %q", got, wantTask)
	}

	// Second roll finds nothing to do
	changed, err = s.Roll()
	if err != nil {
		t.Fatalf("second Roll failed: %v", err)
	}
	if changed {
		t.Error("second roll changed: got true, want false")
	}
}

func TestRollMissingTaskFileIsSkipped(t *testing.T) {
	s, _ := newTestSweeper(t)
	changed, err := s.Roll()
	if err != nil {
		t.Fatalf("Roll failed: %v", err)
	}
	if changed {
		t.Error("changed: got true, want false")
	}
}
