package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/toolbox/packages/bench"
	"github.com/abdul-hamid-achik/toolbox/packages/checks"
	"github.com/google/uuid"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	RunID       string           `json:"runId"`
	Summary     *JSONSummary     `json:"summary,omitempty"`
	Evaluations []JSONEvaluation `json:"evaluations,omitempty"`
	Files       []JSONFile       `json:"files,omitempty"`
	Benchmarks  []JSONBench      `json:"benchmarks,omitempty"`
	Errors      []string         `json:"errors,omitempty"`
	Duration    float64          `json:"duration"`
	Time        string           `json:"time"`
}

// JSONSummary represents the check summary
type JSONSummary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// JSONEvaluation represents one evaluated expression. Value is null for
// non-finite numbers; Display always carries the printed form.
type JSONEvaluation struct {
	Expr      string  `json:"expr"`
	Value     any     `json:"value"`
	Display   string  `json:"display,omitempty"`
	Type      string  `json:"type,omitempty"`
	Error     string  `json:"error,omitempty"`
	ErrorKind string  `json:"errorKind,omitempty"`
	Duration  float64 `json:"duration"`
}

// JSONFile represents the results of one check file
type JSONFile struct {
	File     string      `json:"file"`
	Name     string      `json:"name"`
	Checks   []JSONCheck `json:"checks"`
	Duration float64     `json:"duration"`
}

// JSONCheck represents a single check result
type JSONCheck struct {
	Name       string          `json:"name"`
	Passed     bool            `json:"passed"`
	Skipped    bool            `json:"skipped,omitempty"`
	Message    string          `json:"message,omitempty"`
	Evaluation *JSONEvaluation `json:"evaluation,omitempty"`
}

// JSONBench represents a benchmark report; latencies are in nanoseconds
type JSONBench struct {
	Expr       string  `json:"expr"`
	Iterations int64   `json:"iterations"`
	Errors     int64   `json:"errors"`
	Canceled   bool    `json:"canceled,omitempty"`
	PerSecond  float64 `json:"perSecond"`
	Min        int64   `json:"min"`
	Mean       int64   `json:"mean"`
	P50        int64   `json:"p50"`
	P95        int64   `json:"p95"`
	P99        int64   `json:"p99"`
	Max        int64   `json:"max"`
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	writer      io.Writer
	runID       string
	evaluations []JSONEvaluation
	files       []JSONFile
	benchmarks  []JSONBench
	errors      []string
	summary     *JSONSummary
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
		runID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

// JSONWithRunID fixes the run identifier instead of generating one.
func JSONWithRunID(id string) JSONOption {
	return func(f *JSONFormatter) {
		f.runID = id
	}
}

func toJSONEvaluation(e *checks.Evaluation) JSONEvaluation {
	out := JSONEvaluation{
		Expr:     e.Expr,
		Duration: float64(e.Duration.Microseconds()) / 1000,
	}
	if e.Err != nil {
		out.Error = e.Err.Error()
		out.ErrorKind = checks.ErrorKind(e.Err)
		return out
	}
	out.Value = jsonValue(e.Value)
	out.Display = checks.Display(e.Value)
	out.Type = typeName(e.Value)
	return out
}

func (f *JSONFormatter) FormatEvaluation(e *checks.Evaluation) {
	f.evaluations = append(f.evaluations, toJSONEvaluation(e))
}

func (f *JSONFormatter) FormatFileResult(result *checks.FileResult) {
	file := JSONFile{
		File:     result.File,
		Name:     result.Name,
		Checks:   make([]JSONCheck, 0, len(result.Results)),
		Duration: float64(result.Duration.Microseconds()) / 1000,
	}
	for _, r := range result.Results {
		c := JSONCheck{
			Name:    r.Check.Name,
			Passed:  r.Passed,
			Skipped: r.Skipped,
			Message: r.Message,
		}
		if r.Evaluation != nil {
			e := toJSONEvaluation(r.Evaluation)
			c.Evaluation = &e
		}
		file.Checks = append(file.Checks, c)
	}
	f.files = append(f.files, file)

	if f.summary == nil {
		f.summary = &JSONSummary{}
	}
	f.summary.Passed += result.Passed
	f.summary.Failed += result.Failed
	f.summary.Skipped += result.Skipped
	f.summary.Total += len(result.Results)
}

func (f *JSONFormatter) FormatBench(r *bench.Report) {
	f.benchmarks = append(f.benchmarks, JSONBench{
		Expr:       r.Expr,
		Iterations: r.Iterations,
		Errors:     r.Errors,
		Canceled:   r.Canceled,
		PerSecond:  r.PerSecond(),
		Min:        r.Min.Nanoseconds(),
		Mean:       r.Mean.Nanoseconds(),
		P50:        r.P50.Nanoseconds(),
		P95:        r.P95.Nanoseconds(),
		P99:        r.P99.Nanoseconds(),
		Max:        r.Max.Nanoseconds(),
	})
}

func (f *JSONFormatter) FormatError(err error) {
	f.errors = append(f.errors, err.Error())
}

func (f *JSONFormatter) FormatHeader(version string) {
	// No header needed for JSON output
}

// Flush writes the accumulated JSON output and resets the formatter.
func (f *JSONFormatter) Flush(totalDuration time.Duration) error {
	output := JSONOutput{
		RunID:       f.runID,
		Summary:     f.summary,
		Evaluations: f.evaluations,
		Files:       f.files,
		Benchmarks:  f.benchmarks,
		Errors:      f.errors,
		Duration:    float64(totalDuration.Microseconds()) / 1000,
		Time:        time.Now().Format(time.RFC3339),
	}

	f.evaluations, f.files, f.benchmarks, f.errors, f.summary = nil, nil, nil, nil, nil
	f.runID = uuid.NewString()

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
