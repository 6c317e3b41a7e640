package numbers

import "golang.org/x/exp/constraints"

// FixedPower returns t raised to the power n by repeated multiplication. It
// is intended for the small dimension-dependent exponents that show up in
// scaling factors, not as a general pow. FixedPower(t, 0) is 1 for every t.
func FixedPower[T constraints.Integer | constraints.Float](t T, n uint) T {
	result := T(1)
	for ; n > 0; n-- {
		result *= t
	}
	return result
}
