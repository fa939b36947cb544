package arith

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

const two32 = 4294967296

// Round rounds x to the nearest integer, with halves going toward +Inf.
// Values in (-0.5, 0) round to negative zero.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	if r == 0 && (x < 0 || math.Signbit(x)) {
		return math.Copysign(0, -1)
	}
	return r
}

// ToInt32 truncates x and wraps it modulo 2^32 into the signed 32-bit range.
// NaN and infinities map to 0.
func ToInt32(x float64) int32 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(x), two32)
	if m < 0 {
		m += two32
	}
	if m >= two32/2 {
		m -= two32
	}
	return int32(m)
}

// ToFixed rounds x to the given number of fractional digits. The decision is
// made on the exact binary value of x; exact ties round away from zero.
// Magnitudes at or above 1e21 are returned unchanged.
func ToFixed(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) >= 1e21 {
		return x
	}
	neg := x < 0
	if neg {
		x = -x
	}

	scale := new(big.Float).SetPrec(256).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil))
	scaled := new(big.Float).SetPrec(256).SetFloat64(x)
	scaled.Mul(scaled, scale)

	n, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(256).Sub(scaled, new(big.Float).SetPrec(256).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	s := n.String()
	if digits > 0 {
		if len(s) <= digits {
			s = strings.Repeat("0", digits-len(s)+1) + s
		}
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	v, _ := strconv.ParseFloat(s, 64)
	if neg {
		v = -v
	}
	return v
}

// ParseHexPrefix parses the longest base-16 prefix of s. Leading white space,
// one sign character and a 0x/0X marker are accepted. When no hexadecimal
// digit follows, the result is NaN.
func ParseHexPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, isSpace)

	sign := 1.0
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	if end == 0 {
		return math.NaN()
	}

	n, _ := new(big.Int).SetString(s[:end], 16)
	v, _ := new(big.Float).SetInt(n).Float64()
	return sign * v
}

// FormatNumber prints x in its shortest round-trip decimal form. Integers
// below 1e21 print without exponent; very large or very small magnitudes
// use d.ddde±n notation. NaN and infinities print as "NaN", "Infinity" and
// "-Infinity", and negative zero prints as "0".
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	// mantissa digits and decimal exponent from the shortest representation
	e := strconv.FormatFloat(x, 'e', -1, 64)
	mant, expStr, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expStr)
	k := len(digits)
	n := exp + 1

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}

	expSign := "+"
	if n-1 < 0 {
		expSign = "-"
	}
	out := digits[:1]
	if k > 1 {
		out += "." + digits[1:]
	}
	return sign + out + "e" + expSign + strconv.Itoa(abs(n-1))
}

// FormatHex prints x in base 16 with lowercase digits. Fractional values
// keep their exact binary expansion after the point.
func FormatHex(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	ip, fp := math.Modf(x)
	intPart, _ := new(big.Float).SetFloat64(ip).Int(nil)
	out := sign + intPart.Text(16)
	if fp == 0 {
		return out
	}

	const hexDigits = "0123456789abcdef"
	var b strings.Builder
	b.WriteString(out)
	b.WriteByte('.')
	for fp > 0 {
		fp *= 16
		d := math.Floor(fp)
		b.WriteByte(hexDigits[int(d)])
		fp -= d
	}
	return b.String()
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
