// Package checks evaluates toolbox expressions and verifies them against
// expectations written in YAML check files.
//
// A check file (*.checks.yaml or *.checks.yml) looks like:
//
//	name: numbers smoke
//	checks:
//	  - name: gcd
//	    expr: numbers.gdc(12, 18)
//	    expect: 6
//	  - expr: numbers.isEven("a")
//	    expectError: invalid_argument
//	  - expr: colors.rgbToHsl(10, 20, 30)
//	    expect: {h: 210, s: 50, l: 7.8}
//	    tolerance: 0.1
//
// Files are validated against an embedded JSON schema before any check runs.
// Numbers compare by value (NaN equals NaN, and YAML's .nan and .inf are
// accepted) within the optional tolerance, or by printed form when the
// expectation is a string such as "NaN" or "Infinity". Colors compare field
// by field against a mapping, or by their rgb()/hsl() form against a string.
package checks
