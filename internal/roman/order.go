package roman

import "slices"

// Order sorts the symbols of s into descending weight order
// (M > D > C > L > X > V > I).
//
// Raw concatenation interleaves the two operands' symbols in input
// order, which is not numerically meaningful: "I" + "V" must not be
// read as the numeral "IV" (4) when the intended quantity is 6. The
// sort is stable so equal-weight symbols keep no meaningless relative
// distinction.
//
// Runes outside the alphabet sort last; Order itself never rejects,
// validation does.
func Order(s string) string {
	runes := []rune(s)
	slices.SortStableFunc(runes, func(a, b rune) int {
		return weights[b] - weights[a]
	})
	return string(runes)
}
