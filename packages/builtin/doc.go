// Package builtin exposes the toolbox namespaces as a registry of named,
// dynamically typed functions.
//
// Available namespaces:
//   - timestamps: fromDate, now, fromNow
//   - numbers: isEven, isOdd, isPrime, random, average, gdc, gdcArray, lcm, lcmArray
//   - colors: rgbToHex, hexToRgb, randomHex, randomRgb, hslToRgb, rgbToHsl,
//     randomHsl, hexToHsl, hslToHex
//
// Functions are invoked by qualified name, either with Go values through
// Invoke or from text through Call using the ns.fn(args) syntax, where
// every argument is a JSON literal (NaN, Infinity and -Infinity are accepted
// as numbers):
//
//	numbers.gdcArray([12, 18, 24])
//	timestamps.fromDate(1620000000000, "RELATIVE")
//	colors.hexToHsl("#ff8000")
//
// Arguments are type checked before anything is computed. A value of the
// wrong kind, or a missing required argument, fails with an error matching
// errors.ErrInvalidArgument; extra arguments are ignored.
package builtin
