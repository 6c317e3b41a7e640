package numbers

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrInvalidInteger is returned when a string is not an optional minus sign
// followed by one or more decimal digits.
var ErrInvalidInteger = errors.New("not a valid integer")

// ParseInt converts s to an integer. The entire string must be an optional
// leading '-' followed by decimal digits; whitespace, a leading '+', or
// trailing characters make the whole string invalid rather than being
// skipped.
func ParseInt(s string) (int, error) {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return 0, errors.Wrapf(ErrInvalidInteger, "%q", s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, errors.Wrapf(ErrInvalidInteger, "%q", s)
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		// Shape already validated, so this is an out-of-range value.
		return 0, errors.Wrapf(ErrInvalidInteger, "%q", s)
	}
	return n, nil
}

// ParseInts converts every element of items with ParseInt, preserving order.
// The first invalid element fails the whole conversion and is reported with
// its index.
func ParseInts(items []string) ([]int, error) {
	parsed := make([]int, 0, len(items))
	for i, item := range items {
		n, err := ParseInt(item)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		parsed = append(parsed, n)
	}
	return parsed, nil
}
