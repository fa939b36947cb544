package checks

import (
	"fmt"
	"math"
	"strings"

	"github.com/abdul-hamid-achik/toolbox/packages/core/arith"
	"github.com/xeipuuv/gojsonschema"
)

const fileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["checks"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string"},
    "checks": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["expr"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string"},
          "expr": {"type": "string", "minLength": 1},
          "expect": {},
          "expectError": {"type": "string", "enum": ["invalid_argument", "unknown_function", "syntax", "recursion_limit"]},
          "tolerance": {"type": "number", "minimum": 0}
        },
        "not": {"required": ["expect", "expectError"]}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(fileSchema)

// SchemaError lists the schema violations of a check file.
type SchemaError struct {
	Path     string
	Problems []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: invalid check file: %s", e.Path, strings.Join(e.Problems, "; "))
}

func validateDocument(path string, doc any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(jsonView(doc)))
	if err != nil {
		return fmt.Errorf("%s: validating check file: %w", path, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return &SchemaError{Path: path, Problems: problems}
}

// jsonView copies doc with YAML's .nan and .inf replaced by their printed
// form, since the Go loader marshals through encoding/json.
func jsonView(doc any) any {
	switch v := doc.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return arith.FormatNumber(v)
		}
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = jsonView(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = jsonView(item)
		}
		return out
	}
	return doc
}
