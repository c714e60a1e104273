package util

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const blanks = " \t\n\v\f\r"

// ParseIntPrefix reads a base-10 integer from the longest valid prefix of s. Leading blanks and a single
// sign are accepted. When no digits are found the result is 0. The boolean is false when the number does
// not fit into a signed 32-bit integer.
func ParseIntPrefix(s string) (int32, bool) {
	s = strings.TrimLeft(s, blanks)
	start := 0
	if start < len(s) && (s[start] == '+' || s[start] == '-') {
		start++
	}
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == start {
		return 0, true
	}

	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return 0, false
	}

	return int32(n), true
}

// ParseFloatPrefix reads a floating-point number from the longest valid prefix of s. It never fails:
// malformed input yields 0 and values beyond the float64 range yield an infinity of the matching sign.
// Decimal and hexadecimal literals as well as "inf", "infinity" and "nan" (any case) are recognised.
func ParseFloatPrefix(s string) float64 {
	s = strings.TrimLeft(s, blanks)
	neg := false
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	rest := strings.ToLower(s[i:])
	switch {
	case strings.HasPrefix(rest, "inf"):
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case strings.HasPrefix(rest, "nan"):
		return math.NaN()
	case strings.HasPrefix(rest, "0x"):
		if lit, ok := hexFloatPrefix(s[i+2:]); ok {
			return parseLiteral(s[:i] + "0x" + lit)
		}
		// "0x" without hex digits reads as the decimal 0
		return signed(0, neg)
	}

	end := decimalFloatPrefix(s[i:])
	if end == 0 {
		return 0
	}

	return parseLiteral(s[:i+end])
}

func parseLiteral(lit string) float64 {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}

	// on ErrRange f already holds ±Inf or ±0
	return f
}

// decimalFloatPrefix returns the length of the decimal float literal at the start of s
func decimalFloatPrefix(s string) int {
	i := 0
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	return i + exponentLen(s[i:], 'e')
}

// hexFloatPrefix returns the hexadecimal mantissa (and exponent) following a "0x" prefix, always
// terminated by a binary exponent as strconv requires one for hex floats
func hexFloatPrefix(s string) (string, bool) {
	i := 0
	digits := 0
	for i < len(s) && isHexDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isHexDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return "", false
	}

	if n := exponentLen(s[i:], 'p'); n > 0 {
		return s[:i+n], true
	}

	return s[:i] + "p0", true
}

// exponentLen returns the length of a well-formed exponent (marker, optional sign, digits) at the start of s
func exponentLen(s string, marker byte) int {
	if len(s) == 0 || (s[0]|0x20) != marker {
		return 0
	}
	i := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0
	}

	return i
}

func signed(f float64, neg bool) float64 {
	if neg {
		return -f
	}
	return f
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c|0x20) >= 'a' && (c|0x20) <= 'f'
}
