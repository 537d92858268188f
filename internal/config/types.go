package config

import (
	"time"

	"github.com/seojin/tasksweep/internal/task"
)

// Default values.
const (
	DefaultTaskFile         = "task.md"
	DefaultDoneFile         = "task_done.md"
	DefaultRecurringSection = "Recurring"
	DefaultGeneralSection   = "Tasks"
	DefaultWatchDebounceMS  = 250
)

// Config holds the full configuration for tasksweep.
type Config struct {
	// Paths (relative paths are resolved against the project root)
	TaskFile string `toml:"task_file"`
	DoneFile string `toml:"done_file"`

	// Date pattern for annotations and archive headers (moment-style,
	// e.g. "YYYY-MM-DD"). Empty means the default pattern.
	DateFormat string `toml:"date_format"`

	// Section labels recognized in the task file
	RecurringSection string `toml:"recurring_section"`
	GeneralSection   string `toml:"general_section"`

	// Desktop notification after a sweep archives tasks
	Notify bool `toml:"notify"`

	// Watch mode debounce window in milliseconds
	WatchDebounceMS int `toml:"watch_debounce_ms"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// Labels returns the section labels for the core engine.
func (c *Config) Labels() task.Labels {
	return task.Labels{
		Recurring: c.RecurringSection,
		General:   c.GeneralSection,
	}
}

// WatchDebounce returns the watch-mode debounce window as a duration.
func (c *Config) WatchDebounce() time.Duration {
	ms := c.WatchDebounceMS
	if ms <= 0 {
		ms = DefaultWatchDebounceMS
	}
	return time.Duration(ms) * time.Millisecond
}

// setDefaults fills cfg with built-in defaults.
func setDefaults(cfg *Config) {
	cfg.TaskFile = DefaultTaskFile
	cfg.DoneFile = DefaultDoneFile
	cfg.DateFormat = ""
	cfg.RecurringSection = DefaultRecurringSection
	cfg.GeneralSection = DefaultGeneralSection
	cfg.Notify = false
	cfg.WatchDebounceMS = DefaultWatchDebounceMS
	cfg.LogLevel = "info"
	cfg.LogFormat = "text"
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}
