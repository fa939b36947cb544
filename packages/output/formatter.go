package output

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/abdul-hamid-achik/toolbox/packages/bench"
	"github.com/abdul-hamid-achik/toolbox/packages/checks"
	"github.com/abdul-hamid-achik/toolbox/packages/colors"
)

// Formatter interface for all output formatters
type Formatter interface {
	FormatEvaluation(e *checks.Evaluation)
	FormatFileResult(r *checks.FileResult)
	FormatBench(r *bench.Report)
	FormatError(err error)
	FormatHeader(version string)
}

// Flushable is implemented by formatters that write once at the end.
type Flushable interface {
	Flush(totalDuration time.Duration) error
}

// New returns the formatter for format ("console" or "json").
func New(format string, w io.Writer, verbose, noColor bool) (Formatter, error) {
	switch format {
	case "", "console":
		return NewConsoleFormatter(WithWriter(w), WithVerbose(verbose), WithNoColor(noColor)), nil
	case "json":
		return NewJSONFormatter(JSONWithWriter(w)), nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

// typeName names the kind of a result value.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case string:
		return "string"
	case colors.RGB:
		return "rgb"
	case colors.HSL:
		return "hsl"
	}
	return fmt.Sprintf("%T", v)
}

// jsonValue converts a result into something encoding/json accepts;
// non-finite numbers become null.
func jsonValue(v any) any {
	switch x := v.(type) {
	case float64:
		return jsonNumber(x)
	case colors.RGB:
		return map[string]any{"r": jsonNumber(x.R), "g": jsonNumber(x.G), "b": jsonNumber(x.B)}
	case colors.HSL:
		return map[string]any{"h": jsonNumber(x.H), "s": jsonNumber(x.S), "l": jsonNumber(x.L)}
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = jsonValue(item)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = jsonValue(item)
		}
		return out
	}
	return v
}

func jsonNumber(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}
