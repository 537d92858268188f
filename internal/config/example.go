package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasksweep configuration file
# Values can be overridden by environment variables (TASKSWEEP_*) or CLI flags

# Task file (relative to the working directory)
task_file = "task.md"

# Archive file for completed tasks
done_file = "task_done.md"

# Date pattern for annotations and archive headers (empty = YYYY-MM-DD)
date_format = ""

# Section whose checked tasks are rescheduled to the next day
recurring_section = "Recurring"

# Section for ordinary tasks; any other header behaves the same
general_section = "Tasks"

# Send a desktop notification after a sweep archives tasks
notify = false

# Watch-mode debounce window in milliseconds
watch_debounce_ms = 250

# Logging
log_level = "info"      # debug, info, warn, error
log_format = "text"     # text, logfmt, json
log_timestamps = false
log_caller = false
`
}
