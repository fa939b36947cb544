package checks

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `name: smoke
checks:
  - name: gcd
    expr: numbers.gdc(12, 18)
    expect: 6
  - expr: numbers.isEven("a")
    expectError: invalid_argument
  - expr: colors.rgbToHsl(10, 20, 30)
    expect: {h: 210, s: 50, l: 7.8}
    tolerance: 0.1
  - expr: colors.randomHex()
`

func TestParse(t *testing.T) {
	f, err := Parse("smoke.checks.yaml", []byte(sampleFile))
	require.NoError(t, err)

	assert.Equal(t, "smoke", f.Name)
	require.Len(t, f.Checks, 4)

	gcd := f.Checks[0]
	assert.Equal(t, "gcd", gcd.Name)
	assert.Equal(t, "numbers.gdc(12, 18)", gcd.Expr)
	assert.True(t, gcd.HasExpect)
	assert.Equal(t, 6, gcd.Expect)

	invalid := f.Checks[1]
	assert.Equal(t, `numbers.isEven("a")`, invalid.Name, "name defaults to the expression")
	assert.False(t, invalid.HasExpect)
	assert.Equal(t, KindInvalidArgument, invalid.ExpectError)

	assert.Equal(t, 0.1, f.Checks[2].Tolerance)
	assert.Equal(t, map[string]any{"h": 210, "s": 50, "l": 7.8}, f.Checks[2].Expect)

	assert.False(t, f.Checks[3].HasExpect)
	assert.Empty(t, f.Checks[3].ExpectError)
}

func TestParse_DefaultName(t *testing.T) {
	f, err := Parse("dir/colors.checks.yaml", []byte("checks:\n  - expr: colors.randomRgb()\n"))
	require.NoError(t, err)
	assert.Equal(t, "colors.checks.yaml", f.Name)
}

func TestParse_SchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty document", ""},
		{"no checks", "name: x\n"},
		{"empty checks", "checks: []\n"},
		{"missing expr", "checks:\n  - name: x\n"},
		{"unknown key", "checks:\n  - expr: numbers.gdc(1, 2)\n    expected: 1\n"},
		{"unknown error kind", "checks:\n  - expr: numbers.gdc(1, 2)\n    expectError: boom\n"},
		{"negative tolerance", "checks:\n  - expr: numbers.gdc(1, 2)\n    tolerance: -1\n"},
		{"expect and expectError", "checks:\n  - expr: numbers.gdc(1, 2)\n    expect: 1\n    expectError: syntax\n"},
		{"top-level list", "- expr: numbers.gdc(1, 2)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.checks.yaml", []byte(tt.content))
			require.Error(t, err)

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr), "got %v", err)
			assert.NotEmpty(t, schemaErr.Problems)
			assert.Contains(t, err.Error(), "bad.checks.yaml")
		})
	}
}

func TestParse_NonFiniteExpectations(t *testing.T) {
	content := `checks:
  - expr: numbers.average()
    expect: .nan
  - expr: numbers.average(Infinity)
    expect: .inf
  - expr: numbers.average(-Infinity)
    expect: -.inf
  - expr: numbers.average(1, 2)
    expect: [.nan, {deep: .inf}]
`
	f, err := Parse("nonfinite.checks.yaml", []byte(content))
	require.NoError(t, err)
	require.Len(t, f.Checks, 4)

	assert.True(t, math.IsNaN(f.Checks[0].Expect.(float64)))
	assert.Equal(t, math.Inf(1), f.Checks[1].Expect)
	assert.Equal(t, math.Inf(-1), f.Checks[2].Expect)

	nested := f.Checks[3].Expect.([]any)
	assert.True(t, math.IsNaN(nested[0].(float64)), "the parsed document keeps its numbers")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse("bad.checks.yaml", []byte("checks: [\n"))
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.False(t, errors.As(err, &schemaErr))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "smoke.checks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)

	_, err = LoadFile(filepath.Join(dir, "missing.checks.yaml"))
	assert.Error(t, err)
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(nested, 0755))

	for _, name := range []string{
		filepath.Join(dir, "a.checks.yaml"),
		filepath.Join(nested, "b.checks.yml"),
		filepath.Join(dir, "notes.yaml"),
	} {
		require.NoError(t, os.WriteFile(name, []byte(sampleFile), 0644))
	}

	files, err := CollectFiles([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.checks.yaml"),
		filepath.Join(nested, "b.checks.yml"),
	}, files)

	files, err = CollectFiles([]string{filepath.Join(dir, "notes.yaml")})
	require.NoError(t, err)
	assert.Len(t, files, 1, "explicit files are kept")

	_, err = CollectFiles([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}
