package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/abdul-hamid-achik/toolbox/packages/bench"
	"github.com/abdul-hamid-achik/toolbox/packages/checks"
	"github.com/abdul-hamid-achik/toolbox/packages/colors"
	apperrors "github.com/abdul-hamid-achik/toolbox/packages/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFileResult() *checks.FileResult {
	passing := &checks.Check{Name: "gcd", Expr: "numbers.gdc(12, 18)"}
	failing := &checks.Check{Name: "lcm", Expr: "numbers.lcm(12, 18)"}
	skipped := &checks.Check{Name: "prime", Expr: "numbers.isPrime(7)"}
	return &checks.FileResult{
		File: "smoke.checks.yaml",
		Name: "smoke",
		Results: []*checks.Result{
			{Check: passing, Passed: true, Evaluation: &checks.Evaluation{Expr: passing.Expr, Value: 6.0}},
			{Check: failing, Message: "expected 35, got 36", Evaluation: &checks.Evaluation{Expr: failing.Expr, Value: 36.0}},
			{Check: skipped, Skipped: true, Message: "filtered out"},
		},
		Passed:   1,
		Failed:   1,
		Skipped:  1,
		Duration: 3 * time.Millisecond,
	}
}

func TestNew(t *testing.T) {
	f, err := New("console", &bytes.Buffer{}, false, true)
	require.NoError(t, err)
	assert.IsType(t, &ConsoleFormatter{}, f)

	f, err = New("json", &bytes.Buffer{}, false, true)
	require.NoError(t, err)
	assert.Implements(t, (*Flushable)(nil), f)

	_, err = New("xml", &bytes.Buffer{}, false, true)
	assert.Error(t, err)
}

func TestConsoleFormatter_Evaluation(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatEvaluation(&checks.Evaluation{Expr: "numbers.gdc(12, 18)", Value: 6.0})
	f.FormatEvaluation(&checks.Evaluation{Expr: "numbers.average()", Value: math.NaN()})
	f.FormatEvaluation(&checks.Evaluation{
		Expr: `numbers.isOdd("x")`,
		Err:  apperrors.NewInvalidArgument("numbers.isOdd", "num", "number", "string"),
	})

	out := buf.String()
	assert.Contains(t, out, "6\n")
	assert.Contains(t, out, "NaN\n")
	assert.Contains(t, out, "x numbers.isOdd: invalid argument num: expected number, got string")
}

func TestFormatValue_Truncation(t *testing.T) {
	assert.Equal(t, "short", formatValue("short", 10))
	assert.Equal(t, "abc...", formatValue("abcdef", 3))

	got := formatValue(strings.Repeat("é", 80), 50)
	assert.True(t, utf8.ValidString(got), "cut on a rune boundary")
	assert.Equal(t, strings.Repeat("é", 50)+"...", got)

	assert.Equal(t, strings.Repeat("é", 5), formatValue(strings.Repeat("é", 5), 5), "length counts runes, not bytes")
}

func TestConsoleFormatter_VerboseEvaluation(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithVerbose(true))

	f.FormatEvaluation(&checks.Evaluation{Expr: "colors.hexToRgb(\"#ff0000\")", Value: colors.RGB{R: 255}, Duration: 20 * time.Microsecond})

	out := buf.String()
	assert.Contains(t, out, `colors.hexToRgb("#ff0000") =>`)
	assert.Contains(t, out, "(rgb, 20µs)")
}

func TestConsoleFormatter_FileResult(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatFileResult(sampleFileResult())

	out := buf.String()
	assert.Contains(t, out, "Running: smoke.checks.yaml")
	assert.Contains(t, out, "✓ gcd")
	assert.Contains(t, out, "✗ lcm")
	assert.Contains(t, out, "expected 35, got 36")
	assert.Contains(t, out, "- prime\n")
	assert.Contains(t, out, "1 passed, 1 failed, 1 skipped, 3 total")
	assert.Contains(t, out, "Time:   3ms")
}

func TestConsoleFormatter_Bench(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatBench(&bench.Report{
		Expr:       "numbers.isPrime(97)",
		Iterations: 1000,
		Total:      time.Second,
		LastValue:  true,
		Canceled:   true,
	})

	out := buf.String()
	assert.Contains(t, out, "Benchmark: numbers.isPrime(97)")
	assert.Contains(t, out, "Iterations: 1000 (canceled)")
	assert.Contains(t, out, "Result:     true")
	assert.Contains(t, out, "Throughput: 1000/s")
}

func TestJSONFormatter_Flush(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf), JSONWithRunID("run-1"))

	f.FormatEvaluation(&checks.Evaluation{Expr: "numbers.gdc(12, 18)", Value: 6.0})
	f.FormatEvaluation(&checks.Evaluation{Expr: "numbers.average()", Value: math.NaN()})
	f.FormatEvaluation(&checks.Evaluation{Expr: "colors.randomRgb()", Value: colors.RGB{R: 1, G: 2, B: 3}})
	f.FormatEvaluation(&checks.Evaluation{
		Expr: `numbers.isOdd("x")`,
		Err:  apperrors.NewInvalidArgument("numbers.isOdd", "num", "number", "string"),
	})
	f.FormatFileResult(sampleFileResult())
	f.FormatError(errors.New("boom"))
	require.NoError(t, f.Flush(5*time.Millisecond))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "run-1", out.RunID)
	assert.Equal(t, 5.0, out.Duration)
	require.Len(t, out.Evaluations, 4)

	assert.Equal(t, 6.0, out.Evaluations[0].Value)
	assert.Equal(t, "number", out.Evaluations[0].Type)

	assert.Nil(t, out.Evaluations[1].Value)
	assert.Equal(t, "NaN", out.Evaluations[1].Display)

	assert.Equal(t, map[string]any{"r": 1.0, "g": 2.0, "b": 3.0}, out.Evaluations[2].Value)
	assert.Equal(t, "rgb", out.Evaluations[2].Type)

	assert.Equal(t, checks.KindInvalidArgument, out.Evaluations[3].ErrorKind)

	require.Len(t, out.Files, 1)
	assert.Len(t, out.Files[0].Checks, 3)
	assert.Nil(t, out.Files[0].Checks[2].Evaluation)
	assert.Equal(t, &JSONSummary{Total: 3, Passed: 1, Failed: 1, Skipped: 1}, out.Summary)
	assert.Equal(t, []string{"boom"}, out.Errors)
}

func TestJSONFormatter_FlushResets(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))

	f.FormatEvaluation(&checks.Evaluation{Expr: "numbers.isEven(2)", Value: true})
	require.NoError(t, f.Flush(0))
	first := buf.String()
	buf.Reset()
	require.NoError(t, f.Flush(0))

	var a, b JSONOutput
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &b))
	assert.Len(t, a.Evaluations, 1)
	assert.Empty(t, b.Evaluations)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestJSONFormatter_Bench(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))

	f.FormatBench(&bench.Report{Expr: "numbers.isEven(2)", Iterations: 10, P50: 150 * time.Nanosecond, Total: time.Millisecond})
	require.NoError(t, f.Flush(time.Millisecond))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Benchmarks, 1)
	assert.Equal(t, int64(150), out.Benchmarks[0].P50)
	assert.InDelta(t, 10000, out.Benchmarks[0].PerSecond, 0.001)
}
