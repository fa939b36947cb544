package cmd

import (
	"errors"

	apperrors "github.com/abdul-hamid-achik/toolbox/packages/core/errors"
)

// Exit codes for toolbox CLI
const (
	// ExitSuccess indicates every evaluation and check succeeded
	ExitSuccess = 0

	// ExitCheckFailure indicates one or more checks failed
	ExitCheckFailure = 1

	// ExitEvaluationError indicates an expression failed for a reason other
	// than its arguments, e.g. a gcd that never converges
	ExitEvaluationError = 1

	// ExitInvalidArgument indicates a function rejected an argument
	ExitInvalidArgument = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage or an unparsable expression
	ExitUsageError = 64
)

// exitError carries the process exit code for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	var ee *exitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ee):
		return ee.code
	case apperrors.IsInvalidArgument(err):
		return ExitInvalidArgument
	}
	return ExitUsageError
}
