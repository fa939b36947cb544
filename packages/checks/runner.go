package checks

import (
	"fmt"
	"regexp"
	"time"

	"github.com/abdul-hamid-achik/toolbox/packages/builtin"
	"github.com/abdul-hamid-achik/toolbox/packages/core/logging"
	"github.com/sirupsen/logrus"
)

// Runner evaluates check files against a registry.
type Runner struct {
	registry *builtin.Registry
	logger   logrus.FieldLogger
	filter   *regexp.Regexp
	bail     bool
}

type RunnerOption func(*Runner)

func WithLogger(l logrus.FieldLogger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithNameFilter skips checks whose name does not match pattern.
func WithNameFilter(pattern *regexp.Regexp) RunnerOption {
	return func(r *Runner) {
		r.filter = pattern
	}
}

// WithBail stops a file at its first failing check; the rest are skipped.
func WithBail(b bool) RunnerOption {
	return func(r *Runner) {
		r.bail = b
	}
}

func NewRunner(reg *builtin.Registry, opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: reg,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunFile loads and runs one check file.
func (r *Runner) RunFile(path string) (*FileResult, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return r.Run(f), nil
}

// Run evaluates every check in f.
func (r *Runner) Run(f *File) *FileResult {
	start := time.Now()
	result := &FileResult{
		File: f.Path,
		Name: f.Name,
	}

	stopped := false
	for _, c := range f.Checks {
		if stopped || (r.filter != nil && !r.filter.MatchString(c.Name)) {
			reason := "filtered out"
			if stopped {
				reason = "bail"
			}
			result.Results = append(result.Results, &Result{Check: c, Skipped: true, Message: reason})
			result.Skipped++
			continue
		}

		res := r.runCheck(c)
		result.Results = append(result.Results, res)
		if res.Passed {
			result.Passed++
		} else {
			result.Failed++
			stopped = r.bail
		}
	}

	result.Duration = time.Since(start)
	r.logger.WithFields(logrus.Fields{
		"file":    f.Path,
		"passed":  result.Passed,
		"failed":  result.Failed,
		"skipped": result.Skipped,
	}).Debug("check file finished")
	return result
}

func (r *Runner) runCheck(c *Check) *Result {
	eval := Evaluate(r.registry, c.Expr)
	res := &Result{Check: c, Evaluation: eval}

	r.logger.WithFields(logrus.Fields{
		"check": c.Name,
		"expr":  c.Expr,
		"value": Display(eval.Value),
		"error": eval.Err,
	}).Debug("evaluated check")

	switch {
	case c.ExpectError != "":
		kind := ErrorKind(eval.Err)
		switch {
		case eval.Err == nil:
			res.Message = fmt.Sprintf("expected %s error, got %s", c.ExpectError, Display(eval.Value))
		case kind != c.ExpectError:
			res.Message = fmt.Sprintf("expected %s error, got %s: %v", c.ExpectError, kind, eval.Err)
		default:
			res.Passed = true
		}
	case eval.Err != nil:
		res.Message = eval.Err.Error()
	case !c.HasExpect:
		res.Passed = true
	default:
		res.Passed, res.Message = Compare(c.Expect, eval.Value, c.Tolerance)
	}

	return res
}
