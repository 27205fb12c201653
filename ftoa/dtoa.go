// Package ftoa renders IEEE-754 floats as the shortest decimal string that
// parses back to the original bit pattern, via the Grisu2 algorithm.
package ftoa

import (
	"math"
)

// kDtoaPositiveMaxLength is the largest number of bytes FormatPositive can
// write for a double: 17 mantissa digits, '.', 'e', a sign, and up to 3
// exponent digits, rounded up for headroom.
const kDtoaPositiveMaxLength = 24

// FormatPositive renders a finite, strictly positive value into buf,
// choosing fixed or scientific notation per §4.5, and returns the number of
// bytes written. len(buf) must be at least kDtoaPositiveMaxLength.
//
// FormatPositive panics if value is not finite and strictly positive; that
// precondition is the caller's responsibility, not a runtime condition to
// recover from.
func FormatPositive(buf []byte, value float64, forceTrailingDotZero bool) int {
	if value <= 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		panic("ftoa: FormatPositive requires a finite, strictly positive value")
	}

	digits, exponent := grisu2(buf[:0], boundariesFromFloat64(value))
	return formatDigits(buf, digits, exponent, forceTrailingDotZero)
}

// FormatPositive32 is FormatPositive for single-precision values, computing
// boundaries at native (32-bit) width per §9's open-question resolution:
// re-implementations must match whichever parser they round-trip through,
// and this one is paired with a single-precision parser.
func FormatPositive32(buf []byte, value float32, forceTrailingDotZero bool) int {
	if value <= 0 || math.IsInf(float64(value), 0) || math.IsNaN(float64(value)) {
		panic("ftoa: FormatPositive32 requires a finite, strictly positive value")
	}

	digits, exponent := grisu2(buf[:0], boundariesFromFloat32(value))
	return formatDigits(buf, digits, exponent, forceTrailingDotZero)
}

// minFixedExponent and maxFixedExponent bound the decimal point position for
// which fixed notation is used: the same -6..21 window as typical
// dynamic-language Number-to-string conversion, matching the format choice
// a reader expects from 1e20 (fixed) versus 1e21 (scientific).
const (
	minFixedExponent = -6
	maxFixedExponent = 21
)

// formatDigits lays out the digits Grisu2 produced into buf, choosing
// between fixed and scientific notation per §4.5's decision rule.
func formatDigits(buf []byte, digits []byte, exponent int, forceTrailingDotZero bool) int {
	length := len(digits)
	decimalPoint := length + exponent

	useFixed := minFixedExponent < decimalPoint && decimalPoint <= maxFixedExponent
	if useFixed {
		return formatFixed(buf, digits, decimalPoint, forceTrailingDotZero)
	}
	return formatExponential(buf, digits, decimalPoint)
}

// formatFixed implements the three cases of §4.5's fixed formatter. digits
// aliases the front of buf (Grisu2 wrote them there directly), so every
// case shifts the digit bytes into their final position before writing any
// punctuation or padding over the space they vacated.
func formatFixed(buf []byte, digits []byte, dp int, forceTrailingDotZero bool) int {
	length := len(digits)

	switch {
	case length <= dp:
		// DDDDD000.. — padding lands past the digits already in place.
		n := length
		for i := 0; i < dp-length; i++ {
			buf[n] = '0'
			n++
		}
		if forceTrailingDotZero {
			buf[n] = '.'
			buf[n+1] = '0'
			n += 2
		}
		return n

	case dp > 0:
		// DDD.DDD — shift the fractional tail right by one to make room
		// for '.', then drop '.' into the gap.
		copy(buf[dp+1:dp+1+(length-dp)], digits[dp:])
		buf[dp] = '.'
		return length + 1

	default:
		// 0.000DDDDD — shift all digits right by 2+(-dp), then write the
		// leading "0." and the intervening zeros into the vacated space.
		shift := 2 + (-dp)
		copy(buf[shift:shift+length], digits)
		buf[0] = '0'
		buf[1] = '.'
		for i := 0; i < -dp; i++ {
			buf[2+i] = '0'
		}
		return shift + length
	}
}

// formatExponential renders digits as D.DDDDDe±NNN, with decimalPoint-1 as
// the exponent, always signed, one to three digits.
func formatExponential(buf []byte, digits []byte, decimalPoint int) int {
	// digits aliases buf[0:len(digits)]; shift the trailing digits out of
	// the way before dropping '.' into the gap they vacated.
	n := 1
	if len(digits) > 1 {
		copy(buf[2:1+len(digits)], digits[1:])
		buf[1] = '.'
		n = 1 + len(digits)
	}

	buf[n] = 'e'
	n++

	exp := decimalPoint - 1
	if exp < 0 {
		buf[n] = '-'
		exp = -exp
	} else {
		buf[n] = '+'
	}
	n++

	n += appendExponentDigits(buf[n:], exp)
	return n
}

// appendExponentDigits writes exp (0 <= exp <= 999) as 1 to 3 decimal
// digits with no leading zeros, returning the number of bytes written.
func appendExponentDigits(buf []byte, exp int) int {
	switch {
	case exp >= 100:
		buf[0] = byte('0' + exp/100)
		buf[1] = byte('0' + (exp/10)%10)
		buf[2] = byte('0' + exp%10)
		return 3
	case exp >= 10:
		buf[0] = byte('0' + exp/10)
		buf[1] = byte('0' + exp%10)
		return 2
	default:
		buf[0] = byte('0' + exp)
		return 1
	}
}

// Dtoa renders any finite or special double into buf, handling sign,
// NaN, Infinity and exact zero per §4.5 and §7 before dispatching to
// FormatPositive. nanSpelling and infSpelling default to "NaN" and
// "Infinity" when empty. Returns the number of bytes written.
func Dtoa(buf []byte, value float64, forceTrailingDotZero bool, nanSpelling, infSpelling string) int {
	if nanSpelling == "" {
		nanSpelling = "NaN"
	}
	if infSpelling == "" {
		infSpelling = "Infinity"
	}

	if math.IsNaN(value) {
		return copy(buf, nanSpelling)
	}

	n := 0
	if math.Signbit(value) {
		buf[0] = '-'
		n = 1
		value = -value
	}

	if math.IsInf(value, 0) {
		n += copy(buf[n:], infSpelling)
		return n
	}

	if value == 0 {
		buf[n] = '0'
		n++
		if forceTrailingDotZero {
			buf[n] = '.'
			buf[n+1] = '0'
			n += 2
		}
		return n
	}

	n += FormatPositive(buf[n:], value, forceTrailingDotZero)
	return n
}

// Dtoa32 is Dtoa for single-precision values.
func Dtoa32(buf []byte, value float32, forceTrailingDotZero bool, nanSpelling, infSpelling string) int {
	if nanSpelling == "" {
		nanSpelling = "NaN"
	}
	if infSpelling == "" {
		infSpelling = "Infinity"
	}

	if math.IsNaN(float64(value)) {
		return copy(buf, nanSpelling)
	}

	n := 0
	if math.Signbit(float64(value)) {
		buf[0] = '-'
		n = 1
		value = -value
	}

	if math.IsInf(float64(value), 0) {
		n += copy(buf[n:], infSpelling)
		return n
	}

	if value == 0 {
		buf[n] = '0'
		n++
		if forceTrailingDotZero {
			buf[n] = '.'
			buf[n+1] = '0'
			n += 2
		}
		return n
	}

	n += FormatPositive32(buf[n:], value, forceTrailingDotZero)
	return n
}
