package builtin

import (
	"fmt"

	apperrors "github.com/abdul-hamid-achik/toolbox/packages/core/errors"
	"github.com/abdul-hamid-achik/toolbox/packages/timestamps"
)

// argReader type checks positional arguments on behalf of one function.
type argReader struct {
	fn   string
	args []any
}

func newArgReader(fn string, args []any) *argReader {
	return &argReader{fn: fn, args: args}
}

func (a *argReader) invalid(param, expected string, i int) error {
	return apperrors.NewInvalidArgument(a.fn, param, expected, a.kind(i))
}

func (a *argReader) kind(i int) string {
	if i >= len(a.args) {
		return "missing"
	}
	return kindOf(a.args[i])
}

func (a *argReader) number(i int, param string) (float64, error) {
	if i < len(a.args) {
		if f, ok := toFloat(a.args[i]); ok {
			return f, nil
		}
	}
	return 0, a.invalid(param, "number", i)
}

func (a *argReader) str(i int, param string) (string, error) {
	if i < len(a.args) {
		if s, ok := a.args[i].(string); ok {
			return s, nil
		}
	}
	return "", a.invalid(param, "string", i)
}

// format reads an optional format tag, falling back to def when absent.
func (a *argReader) format(i int, def timestamps.Format) (timestamps.Format, error) {
	if i >= len(a.args) {
		return def, nil
	}
	s, ok := a.args[i].(string)
	if !ok {
		return "", a.invalid("format", "string", i)
	}
	f, err := timestamps.ParseFormat(s)
	if err != nil {
		return "", apperrors.WrapError(err, a.fn)
	}
	return f, nil
}

// numberList reads a single array argument of numbers.
func (a *argReader) numberList(i int, param string) ([]float64, error) {
	if i >= len(a.args) {
		return nil, a.invalid(param, "array of numbers", i)
	}

	var items []any
	switch v := a.args[i].(type) {
	case []any:
		items = v
	case []float64:
		return v, nil
	case []int:
		out := make([]float64, len(v))
		for j, n := range v {
			out[j] = float64(n)
		}
		return out, nil
	default:
		return nil, a.invalid(param, "array of numbers", i)
	}

	out := make([]float64, len(items))
	for j, item := range items {
		f, ok := toFloat(item)
		if !ok {
			return nil, apperrors.NewInvalidArgument(a.fn, fmt.Sprintf("%s[%d]", param, j), "number", kindOf(item))
		}
		out[j] = f
	}
	return out, nil
}

// rest reads every argument from i onward as a number.
func (a *argReader) rest(i int, param string) ([]float64, error) {
	if i >= len(a.args) {
		return nil, nil
	}
	out := make([]float64, 0, len(a.args)-i)
	for j := i; j < len(a.args); j++ {
		f, ok := toFloat(a.args[j])
		if !ok {
			return nil, apperrors.NewInvalidArgument(a.fn, fmt.Sprintf("%s[%d]", param, j-i), "number", kindOf(a.args[j]))
		}
		out = append(out, f)
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func kindOf(v any) string {
	if _, ok := toFloat(v); ok {
		return "number"
	}
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any, []float64, []int:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
