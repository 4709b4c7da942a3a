package token

import (
	"math"
	"strconv"
	"strings"
)

// FormatInt renders v for output. Zero is "0" in every base. A radix hint
// (2, 8 or 16) applies only to non-negative values and renders the unsigned
// magnitude with no sign; hexadecimal digits are upper-case. Anything else
// renders signed base-10. All output is locale-independent.
func FormatInt(v int64, base int) string {
	if v == 0 {
		return "0"
	}
	switch base {
	case 2, 8:
		if v >= 0 {
			return strconv.FormatUint(uint64(v), base)
		}
	case 16:
		if v >= 0 {
			return strings.ToUpper(strconv.FormatUint(uint64(v), 16))
		}
	}
	return strconv.FormatInt(v, 10)
}

// FormatFloat renders v as the shortest decimal form that round-trips,
// appending ".0" when the result would otherwise re-parse as an integer.
// Special values render as the literal tokens "inf", "-inf" and "nan".
// With hexFloat the value renders in hexadecimal floating form instead.
func FormatFloat(v float64, hexFloat bool) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	if hexFloat {
		return strconv.FormatFloat(v, 'x', -1, 64)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func FormatBool(v bool) string {
	return strconv.FormatBool(v)
}

// AppendPadZeros appends v zero-left-padded to at least minDigits digits.
// Used for the fixed-width date and time fields.
func AppendPadZeros(dst []byte, v int64, minDigits int) []byte {
	s := strconv.FormatInt(v, 10)
	for i := len(s); i < minDigits; i++ {
		dst = append(dst, '0')
	}
	return append(dst, s...)
}
