package text

import "strings"

// MatchAtStart reports whether pattern appears at the first position of
// name. The empty pattern matches every name.
func MatchAtStart(name, pattern string) bool {
	return strings.HasPrefix(name, pattern)
}

// ScanInteger reads an optionally negative integer beginning exactly at
// position in name, returning its value and the number of characters it
// occupies, sign included. ok is false when position is out of range or no
// integer starts there; callers probing several positions should treat a
// miss as a normal outcome, not a failure.
func ScanInteger(name string, position int) (value, width int, ok bool) {
	if position < 0 || position >= len(name) {
		return 0, 0, false
	}

	end := position
	if name[end] == '-' {
		end++
	}
	digitsStart := end
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == digitsStart {
		// No digits, so a lone '-' is also a miss.
		return 0, 0, false
	}

	for i := digitsStart; i < end; i++ {
		value = value*10 + int(name[i]-'0')
	}
	if digitsStart > position {
		value = -value
	}
	return value, end - position, true
}
