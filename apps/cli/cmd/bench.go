package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/abdul-hamid-achik/toolbox/packages/bench"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var benchCmd = &cobra.Command{
	Use:   "bench <expr>",
	Short: "Measure how long an expression takes to evaluate",
	Long: `Evaluate one expression repeatedly and report latency percentiles.

Examples:
  toolbox bench 'numbers.isPrime(7919)'
  toolbox bench 'colors.hexToHsl("#336699")' -n 50000
  toolbox bench 'numbers.random(1, 6)' --rate 1000 -n 5000`,
	Args: cobra.ExactArgs(1),
	RunE: benchCommand,
}

var (
	benchIterationsFlag int
	benchWarmupFlag     int
	benchRateFlag       float64
)

func init() {
	defaults := bench.DefaultConfig()
	benchCmd.Flags().IntVarP(&benchIterationsFlag, "iterations", "n", getEnvInt("TOOLBOX_BENCH_ITERATIONS", defaults.Iterations), "Number of measured evaluations (env: TOOLBOX_BENCH_ITERATIONS)")
	benchCmd.Flags().IntVar(&benchWarmupFlag, "warmup", defaults.Warmup, "Evaluations run before measuring")
	benchCmd.Flags().Float64VarP(&benchRateFlag, "rate", "r", 0, "Target evaluations per second (0 = unlimited)")
}

func benchCommand(cmd *cobra.Command, args []string) error {
	cfg := &bench.Config{
		Iterations: benchIterationsFlag,
		Warmup:     benchWarmupFlag,
		Rate:       benchRateFlag,
	}

	formatter, err := newFormatter(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := bench.Run(ctx, registry, args[0], cfg)
	if err != nil {
		return withExitCode(ExitUsageError, err)
	}

	logger.WithFields(logrus.Fields{
		"expr":       report.Expr,
		"iterations": report.Iterations,
		"errors":     report.Errors,
		"canceled":   report.Canceled,
	}).Debug("benchmark finished")

	formatter.FormatBench(report)
	if err := flush(formatter, report.Total); err != nil {
		return err
	}

	if report.LastErr != nil {
		cmd.SilenceErrors = true
		return withExitCode(callExitCode(report.LastErr), report.LastErr)
	}
	return nil
}
