package config

import "flag"

// parseFlags defines and parses CLI flags.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("tasksweep", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.TaskFile, "task", cfg.TaskFile, "Path to the task file")
	fs.StringVar(&cfg.DoneFile, "done", cfg.DoneFile, "Path to the archive file")
	fs.StringVar(&cfg.DateFormat, "date-format", cfg.DateFormat, "Date pattern, e.g. YYYY-MM-DD")
	fs.StringVar(&cfg.RecurringSection, "recurring-section", cfg.RecurringSection, "Label of the recurring section")
	fs.StringVar(&cfg.GeneralSection, "general-section", cfg.GeneralSection, "Label of the general section")
	fs.BoolVar(&cfg.Notify, "notify", cfg.Notify, "Send a desktop notification after archiving")
	fs.IntVar(&cfg.WatchDebounceMS, "debounce", cfg.WatchDebounceMS, "Watch-mode debounce window (milliseconds)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|logfmt|json)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller locations in log output")

	return fs.Parse(args)
}
