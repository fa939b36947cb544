// Package arith holds the IEEE-754 number helpers shared by the toolbox
// namespaces.
//
// The toolbox promises bit-for-bit behavior for edge-case inputs (NaN,
// infinities, negative zero, fractional channels), so rounding, 32-bit
// wrapping, prefix parsing and number printing all live here instead of
// being re-derived in each namespace:
//   - Round: round half toward positive infinity
//   - ToInt32: modular wrap into a signed 32-bit integer
//   - ToFixed: fixed-point rounding on the exact binary value
//   - ParseHexPrefix: longest-prefix base-16 parsing
//   - FormatNumber / FormatHex: canonical decimal and base-16 printing
package arith
