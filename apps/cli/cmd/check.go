package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"syscall"
	"time"

	"github.com/abdul-hamid-achik/toolbox/packages/checks"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file|directory...>",
	Short: "Run check files",
	Long: `Run the checks defined in .checks.yaml files.

Each check evaluates one expression and compares the result with an
expected value or an expected error kind.

Examples:
  toolbox check smoke.checks.yaml
  toolbox check ./checks/ --name "gcd"
  toolbox check ./checks/ --bail
  toolbox check ./checks/ --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: checkCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	nameFlag  string
	bailFlag  bool
	watchFlag bool
)

func init() {
	checkCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Run only checks whose name matches this regular expression")
	checkCmd.Flags().BoolVar(&bailFlag, "bail", false, "Stop a file at its first failing check")
	checkCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch check files for changes and re-run them")
}

// checkTotals aggregates the results of one pass over the files.
type checkTotals struct {
	passed, failed, skipped, broken int
	duration                        time.Duration
}

func (t checkTotals) ok() bool {
	return t.failed == 0 && t.broken == 0
}

func checkCommand(cmd *cobra.Command, args []string) error {
	files, err := checks.CollectFiles(args)
	if err != nil {
		return withExitCode(ExitUsageError, err)
	}
	if len(files) == 0 {
		return withExitCode(ExitUsageError, fmt.Errorf("no .checks.yaml files found"))
	}

	opts := []checks.RunnerOption{
		checks.WithLogger(logger),
		checks.WithBail(bailFlag),
	}
	if nameFlag != "" {
		pattern, err := regexp.Compile(nameFlag)
		if err != nil {
			return withExitCode(ExitUsageError, fmt.Errorf("invalid --name pattern: %w", err))
		}
		opts = append(opts, checks.WithNameFilter(pattern))
	}
	runner := checks.NewRunner(registry, opts...)

	runChecks := func(files []string) (checkTotals, error) {
		formatter, err := newFormatter(cmd)
		if err != nil {
			return checkTotals{}, err
		}
		formatter.FormatHeader(version)

		var totals checkTotals
		start := time.Now()
		for _, file := range files {
			result, err := runner.RunFile(file)
			if err != nil {
				formatter.FormatError(err)
				totals.broken++
				continue
			}

			formatter.FormatFileResult(result)
			totals.passed += result.Passed
			totals.failed += result.Failed
			totals.skipped += result.Skipped
		}
		totals.duration = time.Since(start)

		return totals, flush(formatter, totals.duration)
	}

	totals, err := runChecks(files)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"files":   len(files),
		"passed":  totals.passed,
		"failed":  totals.failed,
		"skipped": totals.skipped,
		"broken":  totals.broken,
	}).Debug("checks finished")

	if !watchFlag {
		if !totals.ok() {
			cmd.SilenceErrors = true
			return withExitCode(ExitCheckFailure, fmt.Errorf("%d check(s) failed, %d file(s) could not be loaded", totals.failed, totals.broken))
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchChecks(ctx, cmd, args, files, runChecks)
}

// watchChecks re-runs the checks whenever a watched check file is written,
// until ctx is cancelled.
func watchChecks(ctx context.Context, cmd *cobra.Command, args, files []string, rerun func([]string) (checkTotals, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Add files and directories to watch
	watchedDirs := make(map[string]bool)
	for _, file := range files {
		dir := filepath.Dir(file)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				logger.WithError(err).WithField("dir", dir).Warn("failed to watch directory")
			}
			watchedDirs[dir] = true
		}
	}

	// Also watch the original args if they're directories
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			_ = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() && !watchedDirs[path] {
					_ = watcher.Add(path)
					watchedDirs[path] = true
				}
				return nil
			})
		}
	}

	watched := make(map[string]bool, len(files))
	for _, file := range files {
		watched[filepath.Clean(file)] = true
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	var debounceTimer *time.Timer
	changed := make(chan string, 1)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(event.Name)
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !checks.IsCheckFile(name) && !watched[name] {
				continue
			}

			// Debounce: reset timer on each event
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				select {
				case changed <- name:
				default:
				}
			})

		case name := <-changed:
			fmt.Fprintf(cmd.OutOrStdout(), "\n\nFile changed: %s\nRe-running checks...\n\n", name)

			// Directories may have gained check files since the last run.
			if refreshed, err := checks.CollectFiles(args); err == nil {
				files = refreshed
			}
			if _, err := rerun(files); err != nil {
				logger.WithError(err).Warn("re-run failed")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WithError(err).Warn("watcher error")
		}
	}
}
