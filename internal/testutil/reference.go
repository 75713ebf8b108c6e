// Package testutil provides deterministic reference helpers for tests.
//
// The production adder stays entirely in the symbolic domain; it never
// converts a numeral to its integer value. Tests, however, need an
// independent oracle to cross-check the pipeline over exhaustive
// ranges. Decode and Encode are that oracle: the standard subtractive
// reading and the standard greedy rendering, deliberately implemented
// nothing like the pipeline under test.
package testutil

// encodings is the greedy rendering table, descending, with the six
// subtractive pairs interleaved at their values.
var encodings = []struct {
	value   int
	numeral string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

var values = map[rune]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// Encode renders n as a canonical Roman numeral via the greedy table.
// n must be positive.
func Encode(n int) string {
	var out []byte
	for _, e := range encodings {
		for n >= e.value {
			out = append(out, e.numeral...)
			n -= e.value
		}
	}
	return string(out)
}

// Decode reads a numeral with the subtractive rule: a symbol of lower
// weight immediately before one of higher weight subtracts. Decode
// assumes the input uses only known symbols; it is a test oracle, not
// a validator.
func Decode(numeral string) int {
	runes := []rune(numeral)
	total := 0
	for i, r := range runes {
		v := values[r]
		if i+1 < len(runes) && v < values[runes[i+1]] {
			total -= v
		} else {
			total += v
		}
	}
	return total
}
