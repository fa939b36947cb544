package output

import (
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/abdul-hamid-achik/toolbox/packages/bench"
	"github.com/abdul-hamid-achik/toolbox/packages/checks"
	"github.com/fatih/color"
)

// formatValue formats a value for display, truncating values longer than
// maxLen runes
func formatValue(v any, maxLen int) string {
	str := checks.Display(v)
	if utf8.RuneCountInString(str) <= maxLen {
		return str
	}
	runes := []rune(str)
	return string(runes[:maxLen]) + "..."
}

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatEvaluation(e *checks.Evaluation) {
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	if e.Err != nil {
		fmt.Fprintf(f.writer, "%s %s\n", red("x"), red(e.Err.Error()))
		return
	}

	if !f.verbose {
		fmt.Fprintf(f.writer, "%s\n", checks.Display(e.Value))
		return
	}

	fmt.Fprintf(f.writer, "%s %s %s %s\n", faint(e.Expr), faint("=>"), checks.Display(e.Value),
		cyan(fmt.Sprintf("(%s, %s)", typeName(e.Value), formatDuration(e.Duration))))
}

func (f *ConsoleFormatter) FormatFileResult(result *checks.FileResult) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "\n%s\n", bold("Running: "+result.File))
	fmt.Fprintf(f.writer, "\n")

	for _, r := range result.Results {
		if r.Skipped {
			fmt.Fprintf(f.writer, "  %s %s", yellow("-"), r.Check.Name)
			if r.Message != "" && r.Message != "filtered out" {
				fmt.Fprintf(f.writer, " (%s)", r.Message)
			}
			fmt.Fprintf(f.writer, "\n")
			continue
		}

		symbol := green("✓")
		if !r.Passed {
			symbol = red("✗")
		}
		fmt.Fprintf(f.writer, "  %s %s %s\n", symbol, r.Check.Name, cyan(fmt.Sprintf("(%s)", formatDuration(r.Evaluation.Duration))))

		if !r.Passed {
			fmt.Fprintf(f.writer, "    %s %s\n", red("→"), r.Check.Expr)
			fmt.Fprintf(f.writer, "      %s\n", r.Message)
		} else if f.verbose {
			value := "error: " + checks.ErrorKind(r.Evaluation.Err)
			if r.Evaluation.Err == nil {
				value = formatValue(r.Evaluation.Value, 100)
			}
			fmt.Fprintf(f.writer, "    %s => %s\n", r.Check.Expr, value)
		}
	}

	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Checks: ")
	if result.Passed > 0 {
		fmt.Fprintf(f.writer, "%s, ", green(fmt.Sprintf("%d passed", result.Passed)))
	}
	if result.Failed > 0 {
		fmt.Fprintf(f.writer, "%s, ", red(fmt.Sprintf("%d failed", result.Failed)))
	}
	if result.Skipped > 0 {
		fmt.Fprintf(f.writer, "%s, ", yellow(fmt.Sprintf("%d skipped", result.Skipped)))
	}
	total := result.Passed + result.Failed + result.Skipped
	fmt.Fprintf(f.writer, "%d total\n", total)
	fmt.Fprintf(f.writer, "Time:   %s\n", formatDuration(result.Duration))
	fmt.Fprintf(f.writer, "\n")
}

func (f *ConsoleFormatter) FormatBench(r *bench.Report) {
	bold := color.New(color.Bold).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(f.writer, "\n%s\n\n", bold("Benchmark: "+r.Expr))
	fmt.Fprintf(f.writer, "  Iterations: %d", r.Iterations)
	if r.Canceled {
		fmt.Fprintf(f.writer, " %s", yellow("(canceled)"))
	}
	fmt.Fprintf(f.writer, "\n")
	if r.Errors > 0 {
		fmt.Fprintf(f.writer, "  Errors:     %s\n", red(fmt.Sprintf("%d (%v)", r.Errors, r.LastErr)))
	} else {
		fmt.Fprintf(f.writer, "  Result:     %s\n", formatValue(r.LastValue, 60))
	}
	fmt.Fprintf(f.writer, "  Throughput: %.0f/s\n", r.PerSecond())
	fmt.Fprintf(f.writer, "  Latency:    min=%s mean=%s p50=%s p95=%s p99=%s max=%s\n",
		r.Min, r.Mean, r.P50, r.P95, r.P99, r.Max)
	fmt.Fprintf(f.writer, "  Total:      %s\n\n", formatDuration(r.Total))
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func (f *ConsoleFormatter) FormatHeader(version string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", bold("toolbox"), version)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}
