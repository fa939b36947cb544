// Package errors defines the error kinds shared across the toolbox.
//
// Every namespace validates the type of its arguments before computing and
// reports a mismatch as an *InvalidArgumentError. Semantic range problems
// (division by zero, out-of-range channels, malformed hex) are never errors;
// they surface as the natural result of the arithmetic.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel matched by every *InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a parameter that failed its runtime type check.
type InvalidArgumentError struct {
	Func     string
	Param    string
	Expected string
	Got      string
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	if e.Func == "" {
		return fmt.Sprintf("invalid argument %s: expected %s, got %s", e.Param, e.Expected, e.Got)
	}
	return fmt.Sprintf("%s: invalid argument %s: expected %s, got %s", e.Func, e.Param, e.Expected, e.Got)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgument builds an InvalidArgumentError.
func NewInvalidArgument(fn, param, expected, got string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Func:     fn,
		Param:    param,
		Expected: expected,
		Got:      got,
	}
}

// IsInvalidArgument checks if an error is an InvalidArgumentError
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
