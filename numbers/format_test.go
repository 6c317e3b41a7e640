package numbers_test

import (
	"strings"
	"testing"

	"github.com/femtools/sciutil/numbers"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Run("returns the canonical base-10 representation", func(t *testing.T) {
		require.Equal(t, "0", numbers.Format(0))
		require.Equal(t, "7", numbers.Format(7))
		require.Equal(t, "1234", numbers.Format(1234))
		require.Equal(t, "18446744073709551615", numbers.Format(18446744073709551615))
	})
}

func TestFormatPadded(t *testing.T) {
	t.Run("left-pads with zeros up to the requested width", func(t *testing.T) {
		require.Equal(t, "0042", numbers.FormatPadded(42, 4))
		require.Equal(t, "007", numbers.FormatPadded(7, 3))
		require.Equal(t, "00000", numbers.FormatPadded(0, 5))
	})

	t.Run("leaves values alone when the width is already filled", func(t *testing.T) {
		require.Equal(t, "42", numbers.FormatPadded(42, 2))
		require.Equal(t, "42", numbers.FormatPadded(42, 1))
		require.Equal(t, "1234", numbers.FormatPadded(1234, 0))
	})

	t.Run("fills exactly the width and parses back for sufficient widths", func(t *testing.T) {
		for _, n := range []uint64{0, 1, 9, 10, 99, 100, 4096, 999999} {
			for extra := 0; extra < 3; extra++ {
				width := numbers.NeededDigits(n) + extra
				padded := numbers.FormatPadded(n, width)
				require.Len(t, padded, width)

				stripped := strings.TrimLeft(padded, "0")
				if stripped == "" {
					stripped = "0"
				}
				parsed, err := numbers.ParseInt(stripped)
				require.NoError(t, err)
				require.Equal(t, int(n), parsed)
			}
		}
	})
}

func TestNeededDigits(t *testing.T) {
	t.Run("returns the digit count of the largest representable value", func(t *testing.T) {
		require.Equal(t, 1, numbers.NeededDigits(0))
		require.Equal(t, 1, numbers.NeededDigits(9))
		require.Equal(t, 2, numbers.NeededDigits(10))
		require.Equal(t, 2, numbers.NeededDigits(99))
		require.Equal(t, 3, numbers.NeededDigits(100))
		require.Equal(t, 7, numbers.NeededDigits(1000000))
		require.Equal(t, 20, numbers.NeededDigits(18446744073709551615))
	})

	t.Run("is non-decreasing", func(t *testing.T) {
		previous := 0
		for n := uint64(0); n <= 2000; n++ {
			digits := numbers.NeededDigits(n)
			require.GreaterOrEqual(t, digits, previous)
			previous = digits
		}
	})

	t.Run("round-trips with Format", func(t *testing.T) {
		for _, n := range []uint64{0, 5, 10, 123, 99999} {
			require.Len(t, numbers.Format(n), numbers.NeededDigits(n))
		}
	})
}
