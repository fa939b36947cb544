package checks

import (
	"regexp"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/toolbox/packages/builtin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *builtin.Registry {
	return builtin.NewRegistry(
		builtin.WithClock(func() time.Time { return time.UnixMilli(1620000000000) }),
		builtin.WithRandom(func() float64 { return 0.5 }),
	)
}

func TestRunner_Run(t *testing.T) {
	f, err := Parse("smoke.checks.yaml", []byte(sampleFile))
	require.NoError(t, err)

	result := NewRunner(testRegistry()).Run(f)

	assert.Equal(t, "smoke", result.Name)
	assert.Equal(t, 4, result.Passed)
	assert.Equal(t, 0, result.Failed)
	for _, r := range result.Results {
		assert.True(t, r.Passed, "%s: %s", r.Check.Name, r.Message)
	}
}

func TestRunner_Failures(t *testing.T) {
	content := `checks:
  - name: wrong value
    expr: numbers.lcm(12, 18)
    expect: 35
  - name: unexpected error
    expr: numbers.isOdd("x")
    expect: true
  - name: missing error
    expr: numbers.isOdd(3)
    expectError: invalid_argument
  - name: wrong error kind
    expr: numbers.nope(3)
    expectError: invalid_argument
  - name: right error kind
    expr: numbers.nope(3)
    expectError: unknown_function
  - name: syntax
    expr: numbers.isOdd(3
    expectError: syntax
  - name: timestamp
    expr: timestamps.now("RELATIVE")
    expect: "<t:1620000000:R>"
  - name: nan
    expr: numbers.average()
    expect: NaN
`
	f, err := Parse("failures.checks.yaml", []byte(content))
	require.NoError(t, err)

	result := NewRunner(testRegistry()).Run(f)
	require.Len(t, result.Results, 8)

	byName := map[string]*Result{}
	for _, r := range result.Results {
		byName[r.Check.Name] = r
	}

	assert.False(t, byName["wrong value"].Passed)
	assert.Equal(t, "expected 35, got 36", byName["wrong value"].Message)

	assert.False(t, byName["unexpected error"].Passed)
	assert.Contains(t, byName["unexpected error"].Message, "invalid argument")

	assert.False(t, byName["missing error"].Passed)
	assert.Equal(t, "expected invalid_argument error, got true", byName["missing error"].Message)

	assert.False(t, byName["wrong error kind"].Passed)
	assert.Contains(t, byName["wrong error kind"].Message, "got unknown_function")

	assert.True(t, byName["right error kind"].Passed)
	assert.True(t, byName["syntax"].Passed)
	assert.True(t, byName["timestamp"].Passed)
	assert.True(t, byName["nan"].Passed)

	assert.Equal(t, 4, result.Passed)
	assert.Equal(t, 4, result.Failed)
}

func TestRunner_NonFinite(t *testing.T) {
	content := `checks:
  - name: nan
    expr: numbers.average()
    expect: .nan
  - name: inf
    expr: numbers.average(Infinity, 1)
    expect: .inf
  - name: negative inf
    expr: numbers.average(-Infinity)
    expect: -.inf
  - name: finite is not nan
    expr: numbers.average(1)
    expect: .nan
  - name: gcd of nan
    expr: numbers.gdc(NaN, 1)
    expectError: recursion_limit
`
	f, err := Parse("nonfinite.checks.yaml", []byte(content))
	require.NoError(t, err)

	result := NewRunner(testRegistry()).Run(f)
	require.Len(t, result.Results, 5)

	byName := map[string]*Result{}
	for _, r := range result.Results {
		byName[r.Check.Name] = r
	}

	assert.True(t, byName["nan"].Passed, byName["nan"].Message)
	assert.True(t, byName["inf"].Passed, byName["inf"].Message)
	assert.True(t, byName["negative inf"].Passed, byName["negative inf"].Message)
	assert.True(t, byName["gcd of nan"].Passed, byName["gcd of nan"].Message)

	assert.False(t, byName["finite is not nan"].Passed)
	assert.Equal(t, "expected NaN, got 1", byName["finite is not nan"].Message)
}

func TestRunner_NameFilter(t *testing.T) {
	f, err := Parse("smoke.checks.yaml", []byte(sampleFile))
	require.NoError(t, err)

	result := NewRunner(testRegistry(), WithNameFilter(regexp.MustCompile("^gcd$"))).Run(f)
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 3, result.Skipped)
	assert.Equal(t, "filtered out", result.Results[1].Message)
}

func TestRunner_Bail(t *testing.T) {
	content := `checks:
  - expr: numbers.isEven(3)
    expect: true
  - expr: numbers.isEven(4)
    expect: true
`
	f, err := Parse("bail.checks.yaml", []byte(content))
	require.NoError(t, err)

	result := NewRunner(testRegistry(), WithBail(true)).Run(f)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "bail", result.Results[1].Message)
}

func TestErrorKind(t *testing.T) {
	reg := testRegistry()

	_, err := reg.Call(`numbers.isEven("a")`)
	assert.Equal(t, KindInvalidArgument, ErrorKind(err))

	_, err = reg.Call(`numbers.nope()`)
	assert.Equal(t, KindUnknownFunction, ErrorKind(err))

	_, err = reg.Call(`numbers.isEven(`)
	assert.Equal(t, KindSyntax, ErrorKind(err))

	_, err = reg.Call(`numbers.lcmArray([Infinity, 2])`)
	assert.Equal(t, KindRecursionLimit, ErrorKind(err))

	assert.Equal(t, "", ErrorKind(nil))
}

func TestEvaluate(t *testing.T) {
	eval := Evaluate(testRegistry(), "numbers.gdc(12, 18)")
	require.NoError(t, eval.Err)
	assert.Equal(t, 6.0, eval.Value)
	assert.Equal(t, "numbers.gdc(12, 18)", eval.Expr)
	assert.GreaterOrEqual(t, eval.Duration, time.Duration(0))
}
