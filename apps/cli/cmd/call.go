package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/toolbox/packages/builtin"
	"github.com/abdul-hamid-achik/toolbox/packages/checks"
	"github.com/abdul-hamid-achik/toolbox/packages/numbers"
	apperrors "github.com/abdul-hamid-achik/toolbox/packages/core/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <expr...>",
	Short: "Evaluate toolbox expressions",
	Long: `Evaluate one or more expressions and print their results.

An expression is a qualified function name followed by JSON arguments.
NaN, Infinity and -Infinity are accepted as numbers. Pass "-" to read
one expression per line from stdin.

Examples:
  toolbox call 'numbers.isPrime(97)'
  toolbox call 'timestamps.fromDate(1620000000000, "SHORT_TIME")'
  toolbox call 'colors.rgbToHex(255, 136, 0)' 'colors.hexToRgb("#ff8800")'
  toolbox call 'numbers.gdcArray([12, 18, 24])' --output json
  echo 'numbers.lcm(4, 6)' | toolbox call -`,
	Args: cobra.MinimumNArgs(1),
	RunE: callCommand,
}

func callCommand(cmd *cobra.Command, args []string) error {
	exprs, err := expandExpressions(args, cmd.InOrStdin())
	if err != nil {
		return withExitCode(ExitUsageError, err)
	}

	formatter, err := newFormatter(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	var firstErr error
	for _, expr := range exprs {
		eval := checks.Evaluate(registry, expr)
		logger.WithFields(logrus.Fields{
			"expr":     expr,
			"duration": eval.Duration,
			"error":    eval.Err,
		}).Debug("evaluated")

		formatter.FormatEvaluation(eval)
		if eval.Err != nil && firstErr == nil {
			firstErr = eval.Err
		}
	}

	if err := flush(formatter, time.Since(start)); err != nil {
		return err
	}
	if firstErr == nil {
		return nil
	}

	// The formatter has already reported the failure.
	cmd.SilenceErrors = true
	return withExitCode(callExitCode(firstErr), firstErr)
}

func callExitCode(err error) int {
	switch {
	case apperrors.IsInvalidArgument(err):
		return ExitInvalidArgument
	case errors.Is(err, builtin.ErrUnknownFunction), errors.Is(err, builtin.ErrSyntax):
		return ExitUsageError
	case errors.Is(err, numbers.ErrRecursionLimit):
		return ExitEvaluationError
	}
	return ExitEvaluationError
}

// expandExpressions replaces a "-" argument with the non-empty lines read
// from in.
func expandExpressions(args []string, in io.Reader) ([]string, error) {
	var exprs []string
	for _, arg := range args {
		if arg != "-" {
			exprs = append(exprs, arg)
			continue
		}

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			exprs = append(exprs, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading expressions: %w", err)
		}
	}
	if len(exprs) == 0 {
		return nil, errors.New("no expressions given")
	}
	return exprs, nil
}
