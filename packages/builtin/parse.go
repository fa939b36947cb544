package builtin

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var funcCallPattern = regexp.MustCompile(`^([A-Za-z_]\w*(?:\.[A-Za-z_]\w*)*)\s*\((.*)\)$`)

// ParseCall splits an expression into a qualified function name and its
// decoded arguments.
func ParseCall(expr string) (string, []any, error) {
	matches := funcCallPattern.FindStringSubmatch(strings.TrimSpace(expr))
	if matches == nil {
		return "", nil, fmt.Errorf("%w: expected name(args), got %q", ErrSyntax, expr)
	}

	name := matches[1]
	argsStr := strings.TrimSpace(matches[2])

	var args []any
	if argsStr != "" {
		parts, err := splitArgs(argsStr)
		if err != nil {
			return "", nil, err
		}
		args = make([]any, 0, len(parts))
		for _, p := range parts {
			v, err := parseLiteral(p)
			if err != nil {
				return "", nil, err
			}
			args = append(args, v)
		}
	}

	return name, args, nil
}

// splitArgs splits on commas that sit outside strings and brackets.
func splitArgs(s string) ([]string, error) {
	var args []string
	var current strings.Builder
	inQuote := false
	escaped := false
	depth := 0

	flush := func() error {
		arg := strings.TrimSpace(current.String())
		if arg == "" {
			return fmt.Errorf("%w: empty argument in %q", ErrSyntax, s)
		}
		args = append(args, arg)
		current.Reset()
		return nil
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case inQuote:
			if escaped {
				escaped = false
			} else if ch == '\\' {
				escaped = true
			} else if ch == '"' {
				inQuote = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[' || ch == '{':
			depth++
		case ch == ']' || ch == '}':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced %q in %q", ErrSyntax, ch, s)
			}
		case ch == ',' && depth == 0:
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		current.WriteByte(ch)
	}

	if inQuote {
		return nil, fmt.Errorf("%w: unterminated string in %q", ErrSyntax, s)
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrSyntax, s)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return args, nil
}

// JSON has no NaN or Infinity, so bare occurrences outside strings are
// swapped for marker strings before parsing and restored afterwards.
var nonFiniteLiterals = []struct {
	literal string
	marker  string // JSON text of the marker
}{
	{"-Infinity", `"\u0000-Infinity"`},
	{"+Infinity", `"\u0000Infinity"`},
	{"Infinity", `"\u0000Infinity"`},
	{"NaN", `"\u0000NaN"`},
}

var nonFiniteMarkers = map[string]float64{
	"\x00-Infinity": math.Inf(-1),
	"\x00Infinity":  math.Inf(1),
	"\x00NaN":       math.NaN(),
}

func parseLiteral(tok string) (any, error) {
	marked := markNonFinite(tok)
	if !gjson.Valid(marked) {
		return nil, fmt.Errorf("%w: invalid literal %s", ErrSyntax, tok)
	}
	return fromResult(gjson.Parse(marked)), nil
}

// markNonFinite replaces NaN, Infinity and -Infinity outside string literals
// with their markers.
func markNonFinite(tok string) string {
	var b strings.Builder
	inQuote := false
	escaped := false

	for i := 0; i < len(tok); {
		ch := tok[i]
		if inQuote {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inQuote = false
			}
			b.WriteByte(ch)
			i++
			continue
		}
		if ch == '"' {
			inQuote = true
			b.WriteByte(ch)
			i++
			continue
		}

		replaced := false
		for _, nf := range nonFiniteLiterals {
			end := i + len(nf.literal)
			if !strings.HasPrefix(tok[i:], nf.literal) {
				continue
			}
			if (i > 0 && isWordByte(tok[i-1])) || (end < len(tok) && isWordByte(tok[end])) {
				continue
			}
			b.WriteString(nf.marker)
			i = end
			replaced = true
			break
		}
		if !replaced {
			b.WriteByte(ch)
			i++
		}
	}
	return b.String()
}

func isWordByte(c byte) bool {
	return c == '_' || c == '.' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func fromResult(res gjson.Result) any {
	switch res.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return res.Num
	case gjson.String:
		if v, ok := nonFiniteMarkers[res.Str]; ok {
			return v
		}
		return res.Str
	}

	if res.IsArray() {
		items := res.Array()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = fromResult(item)
		}
		return out
	}

	obj := make(map[string]any)
	res.ForEach(func(key, value gjson.Result) bool {
		obj[key.Str] = fromResult(value)
		return true
	})
	return obj
}
