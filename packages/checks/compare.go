package checks

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/abdul-hamid-achik/toolbox/packages/colors"
	"github.com/abdul-hamid-achik/toolbox/packages/core/arith"
)

// Compare reports whether actual satisfies expected, with a message on
// mismatch.
func Compare(expected, actual any, tolerance float64) (bool, string) {
	switch a := actual.(type) {
	case float64:
		if e, ok := toNumber(expected); ok {
			if numbersEqual(e, a, tolerance) {
				return true, ""
			}
		} else if e, ok := expected.(string); ok && e == arith.FormatNumber(a) {
			return true, ""
		}
	case bool:
		if e, ok := expected.(bool); ok && e == a {
			return true, ""
		}
	case string:
		if e, ok := expected.(string); ok && e == a {
			return true, ""
		}
	case colors.RGB:
		if compareRecord(expected, a.String(), map[string]float64{"r": a.R, "g": a.G, "b": a.B}, tolerance) {
			return true, ""
		}
	case colors.HSL:
		if compareRecord(expected, a.String(), map[string]float64{"h": a.H, "s": a.S, "l": a.L}, tolerance) {
			return true, ""
		}
	}
	return false, fmt.Sprintf("expected %s, got %s", Display(expected), Display(actual))
}

func numbersEqual(expected, actual, tolerance float64) bool {
	if math.IsNaN(expected) && math.IsNaN(actual) {
		return true
	}
	return expected == actual || math.Abs(expected-actual) <= tolerance
}

func compareRecord(expected any, display string, fields map[string]float64, tolerance float64) bool {
	switch e := expected.(type) {
	case string:
		return e == display
	case map[string]any:
		if len(e) != len(fields) {
			return false
		}
		for k, v := range e {
			got, ok := fields[k]
			if !ok {
				return false
			}
			want, ok := toNumber(v)
			if !ok || !numbersEqual(want, got, tolerance) {
				return false
			}
		}
		return true
	}
	return false
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Display renders a value the way results are printed.
func Display(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case float64:
		return arith.FormatNumber(x)
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + Display(x[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			parts[i] = Display(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	if n, ok := toNumber(v); ok {
		return arith.FormatNumber(n)
	}
	return fmt.Sprintf("%v", v)
}
