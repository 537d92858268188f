// Package cmd implements the CLI command structure for tasksweep.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/seojin/tasksweep/internal/config"
	"github.com/seojin/tasksweep/internal/logging"
	"github.com/seojin/tasksweep/internal/sweep"
	"github.com/seojin/tasksweep/internal/task"
	"github.com/seojin/tasksweep/internal/watch"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tasksweep CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("tasksweep", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.NewFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)

	// Determine the subcommand. If no args or the first arg is a flag,
	// default to "sweep".
	subcommand := "sweep"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "sweep":
		return sweepCommand(cfg, logger, remainingArgs)
	case "roll":
		return rollCommand(cfg, logger, remainingArgs)
	case "watch":
		return watchCommand(ctx, cfg, logger, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "init":
		return initCommand(remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		// An unrecognized command that names an existing file is treated
		// as the task file for a sweep.
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			cfg.TaskFile = absAgainstRoot(cfg, subcommand)
			return sweepCommand(cfg, logger, remainingArgs)
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// sweepCommand runs one extract-then-merge pass.
func sweepCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if err := takeTaskFileArg(cfg, "tasksweep sweep", args); err != nil {
		return err
	}

	s := sweep.New(cfg, logger)
	count, err := s.Sweep()
	if err != nil {
		return err
	}
	if count == 0 {
		fmt.Println("Nothing to archive.")
		return nil
	}
	fmt.Printf("Archived %d task(s) to %s\n", count, cfg.DoneFile)
	return nil
}

// rollCommand runs the repeat-date check only.
func rollCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	if err := takeTaskFileArg(cfg, "tasksweep roll", args); err != nil {
		return err
	}

	s := sweep.New(cfg, logger)
	changed, err := s.Roll()
	if err != nil {
		return err
	}
	if !changed {
		fmt.Println("No recurring tasks due today.")
		return nil
	}
	fmt.Println("Recurring tasks due today are back on the list.")
	return nil
}

// watchCommand rolls once, sweeps once, then watches the task file.
func watchCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) error {
	if err := takeTaskFileArg(cfg, "tasksweep watch", args); err != nil {
		return err
	}

	s := sweep.New(cfg, logger)
	if _, err := s.Roll(); err != nil {
		return err
	}
	if _, err := s.Sweep(); err != nil {
		return err
	}

	w := watch.New(s, logger, cfg.TaskFile, cfg.WatchDebounce())
	if err := w.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// initCommand writes an example project config file.
func initCommand(args []string) error {
	fs := flag.NewFlagSet("tasksweep init", flag.ContinueOnError)
	force := fs.Bool("force", false, "Overwrite an existing config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := "tasksweep.toml"
	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

// doctorCommand checks the config and both files.
func doctorCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasksweep doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := takeTaskFileArg(cfg, "tasksweep doctor", fs.Args()); err != nil {
		return err
	}

	fmt.Println("tasksweep doctor")
	fmt.Println("================")
	fmt.Println()

	allOK := true

	fmt.Println("Config:")
	if cfg.RecurringSection == "" {
		fmt.Println("  ❌ recurring_section is empty")
		allOK = false
	} else {
		fmt.Printf("  ✅ Recurring section: %s\n", cfg.RecurringSection)
	}
	if cfg.GeneralSection == "" {
		fmt.Println("  ❌ general_section is empty")
		allOK = false
	} else {
		fmt.Printf("  ✅ General section: %s\n", cfg.GeneralSection)
	}
	if cfg.RecurringSection != "" && cfg.RecurringSection == cfg.GeneralSection {
		fmt.Println("  ❌ recurring_section and general_section are the same")
		allOK = false
	}
	pattern := cfg.DateFormat
	if pattern == "" {
		pattern = task.DefaultDatePattern
	}
	fmt.Printf("  ✅ Date pattern: %s\n", pattern)
	fmt.Println()

	fmt.Printf("Task file: %s\n", cfg.TaskFile)
	if ok := checkTaskFile(cfg, *verbose); !ok {
		allOK = false
	}
	fmt.Println()

	fmt.Printf("Archive file: %s\n", cfg.DoneFile)
	if info, err := os.Stat(cfg.DoneFile); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (will be created on first sweep)")
		} else {
			fmt.Printf("  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if info.IsDir() {
		fmt.Println("  ❌ Error: path is a directory")
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. tasksweep may not function correctly.")
	return fmt.Errorf("doctor checks failed")
}

// checkTaskFile validates the task file and reports per-section counts.
func checkTaskFile(cfg *config.Config, verbose bool) bool {
	info, err := os.Stat(cfg.TaskFile)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("  ⚠️  Not found (sweeps will be skipped until it exists)")
			return true
		}
		fmt.Printf("  ❌ Error: %v\n", err)
		return false
	}
	if info.IsDir() {
		fmt.Println("  ❌ Error: path is a directory")
		return false
	}
	fmt.Println("  ✅ OK")

	data, err := os.ReadFile(cfg.TaskFile)
	if err != nil {
		fmt.Printf("  ❌ Read error: %v\n", err)
		return false
	}

	var headers, checked, unchecked int
	recurringSeen := false
	for _, line := range task.SplitLines(string(data)) {
		switch l := task.Classify(line); l.Kind {
		case task.KindHeader:
			headers++
			if l.Section == cfg.RecurringSection {
				recurringSeen = true
			}
		case task.KindChecked:
			checked++
		case task.KindUnchecked:
			unchecked++
		}
	}
	fmt.Printf("  Sections: %d, tasks: %d pending, %d completed\n", headers, unchecked, checked)
	if !recurringSeen && verbose {
		fmt.Printf("  ⚠️  No %q section found\n", cfg.RecurringSection)
	}
	return true
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("tasksweep version %s\n", Version)
	return nil
}

// takeTaskFileArg applies an optional positional task-file argument.
func takeTaskFileArg(cfg *config.Config, name string, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%s: unexpected arguments: %v", name, args[1:])
	}
	if len(args) == 1 {
		cfg.TaskFile = absAgainstRoot(cfg, args[0])
	}
	return nil
}

func absAgainstRoot(cfg *config.Config, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.ProjectRoot, path)
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "tasksweep - Archives completed markdown tasks and reschedules recurring ones")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasksweep [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  sweep [file]   Move completed tasks to the archive (default command)")
	fmt.Fprintln(w, "  roll [file]    Un-check recurring tasks scheduled for today")
	fmt.Fprintln(w, "  watch [file]   Roll, sweep, then keep sweeping on every change")
	fmt.Fprintln(w, "  doctor [file]  Check config and files")
	fmt.Fprintln(w, "  init           Write an example tasksweep.toml")
	fmt.Fprintln(w, "  version        Show version information")
	fmt.Fprintln(w, "  help           Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
