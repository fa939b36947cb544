// Package numbers provides parity, primality, random range, averaging and
// GCD/LCM helpers over float64.
//
// All arithmetic follows IEEE-754 semantics: the remainder is math.Mod, whose
// sign matches the dividend, and non-integer or non-finite inputs are not
// special-cased. Empty sequences reduce to NaN. GDC gives up with
// ErrRecursionLimit when the remainders never reach zero, as with NaN or
// Infinity.
package numbers
