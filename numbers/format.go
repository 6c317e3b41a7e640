// Package numbers provides the integer formatting and parsing helpers used
// throughout the library to build numbered file suffixes, align diagnostics,
// and read integer-valued parameter fragments.
package numbers

import (
	"strconv"
	"strings"
)

// Format returns the canonical base-10 representation of n.
func Format(n uint64) string {
	return strconv.FormatUint(n, 10)
}

// FormatPadded returns n in base 10, left-padded with zeros until the result
// is width characters long. A value that already needs width or more digits
// is returned unpadded, so the result can exceed width.
func FormatPadded(n uint64, width int) string {
	s := strconv.FormatUint(n, 10)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// NeededDigits returns how many base-10 digits are required to represent
// every value up to and including max. NeededDigits(0) is 1.
func NeededDigits(max uint64) int {
	digits := 1
	for max >= 10 {
		max /= 10
		digits++
	}
	return digits
}
