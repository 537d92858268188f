// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.tasksweep/tasksweep.toml or OS-specific config directory)
// 3. Project config file (tasksweep.toml or .tasksweep.toml in the working directory)
// 4. Environment variables (TASKSWEEP_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.tasksweep/tasksweep.toml (preferred)
// - Windows: %APPDATA%\tasksweep\tasksweep.toml
// - macOS: ~/Library/Application Support/tasksweep/tasksweep.toml
// - Linux/BSD: $XDG_CONFIG_HOME/tasksweep/tasksweep.toml or ~/.config/tasksweep/tasksweep.toml
//
// Project-level config locations (overrides user config):
// - ./tasksweep.toml (preferred)
// - ./.tasksweep.toml
package config
