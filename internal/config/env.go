package config

import (
	"os"
	"strconv"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKSWEEP_TASK_FILE"); v != "" {
		cfg.TaskFile = v
	}
	if v := os.Getenv("TASKSWEEP_DONE_FILE"); v != "" {
		cfg.DoneFile = v
	}
	if v := os.Getenv("TASKSWEEP_DATE_FORMAT"); v != "" {
		cfg.DateFormat = v
	}
	if v := os.Getenv("TASKSWEEP_RECURRING_SECTION"); v != "" {
		cfg.RecurringSection = v
	}
	if v := os.Getenv("TASKSWEEP_GENERAL_SECTION"); v != "" {
		cfg.GeneralSection = v
	}
	if v := os.Getenv("TASKSWEEP_NOTIFY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Notify = b
		}
	}
	if v := os.Getenv("TASKSWEEP_WATCH_DEBOUNCE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WatchDebounceMS = n
		}
	}
	if v := os.Getenv("TASKSWEEP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKSWEEP_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
