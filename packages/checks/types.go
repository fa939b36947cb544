package checks

import (
	"errors"
	"time"

	"github.com/abdul-hamid-achik/toolbox/packages/builtin"
	apperrors "github.com/abdul-hamid-achik/toolbox/packages/core/errors"
	"github.com/abdul-hamid-achik/toolbox/packages/numbers"
)

// Error kinds accepted by expectError.
const (
	KindInvalidArgument = "invalid_argument"
	KindUnknownFunction = "unknown_function"
	KindSyntax          = "syntax"
	KindRecursionLimit  = "recursion_limit"
)

// Evaluation is the outcome of evaluating one expression.
type Evaluation struct {
	Expr     string
	Value    any
	Err      error
	Duration time.Duration
}

// Evaluate runs expr through the registry and times it.
func Evaluate(reg *builtin.Registry, expr string) *Evaluation {
	start := time.Now()
	value, err := reg.Call(expr)
	return &Evaluation{
		Expr:     expr,
		Value:    value,
		Err:      err,
		Duration: time.Since(start),
	}
}

// Check is one expectation from a check file.
type Check struct {
	Name        string
	Expr        string
	Expect      any
	HasExpect   bool
	ExpectError string
	Tolerance   float64
}

// File is a parsed check file.
type File struct {
	Path   string
	Name   string
	Checks []*Check
}

// Result is the outcome of one check.
type Result struct {
	Check      *Check
	Evaluation *Evaluation
	Passed     bool
	Skipped    bool
	Message    string
}

// FileResult aggregates the results of one file.
type FileResult struct {
	File     string
	Name     string
	Results  []*Result
	Passed   int
	Failed   int
	Skipped  int
	Duration time.Duration
}

// ErrorKind classifies an evaluation error into one of the Kind constants,
// or "error" for anything else.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case apperrors.IsInvalidArgument(err):
		return KindInvalidArgument
	case errors.Is(err, builtin.ErrUnknownFunction):
		return KindUnknownFunction
	case errors.Is(err, builtin.ErrSyntax):
		return KindSyntax
	case errors.Is(err, numbers.ErrRecursionLimit):
		return KindRecursionLimit
	}
	return "error"
}
