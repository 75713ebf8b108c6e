package roman

import "strings"

// Desimplify expands every subtractive pair in s into its additive run
// equivalent: IV -> IIII, IX -> VIIII, XL -> XXXX, XC -> LXXXX,
// CD -> CCCC, CM -> DCCCC.
//
// Expansion must happen per input, before concatenation, because
// subtractive forms are not meaningfully concatenable: the "I" in "IV"
// belongs to the pair, not to whatever symbol follows after a join.
//
// Only pairs whose symbols all fall inside the active set are
// expanded. With a restricted set, a pair naming an unsupported
// symbol is left intact so validation can reject it.
func Desimplify(s string, set SymbolSet) string {
	// High tier first. The pairs never overlap, but rewriting CM
	// before CD keeps the walk in one direction.
	for i := len(tiers) - 1; i >= 0; i-- {
		t := tiers[i]
		if set.Supports(t.unit) && set.Supports(t.five) && set.Supports(t.next) {
			nine := string(t.unit) + string(t.next)
			s = strings.ReplaceAll(s, nine, string(t.five)+strings.Repeat(string(t.unit), 4))
		}
		if set.Supports(t.unit) && set.Supports(t.five) {
			four := string(t.unit) + string(t.five)
			s = strings.ReplaceAll(s, four, strings.Repeat(string(t.unit), 4))
		}
	}
	return s
}
