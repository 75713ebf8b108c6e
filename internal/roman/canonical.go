package roman

import "strings"

// Canonicalize contracts an ordered additive numeral into canonical
// form. The input must already be in descending weight order (see
// Order); the output is idempotent under re-canonicalization.
//
// Two passes, both walking the tiers from low to high:
//
// Carry pass. Runs of five units contract into the five-symbol, two
// five-symbols contract into the next tier's unit. Each rule repeats
// to fixpoint and the string is re-sorted after every rewrite, because
// a carry can land next to an existing run one tier up (five I's
// becoming a V may complete a VV).
//
// Subtractive pass. After the carries, every tier holds at most four
// units and one five-symbol, so each pattern occurs at most once. The
// nine-form must be tried before the four-form: in sorted form the
// nine-form contains the four-form as a suffix (VIIII vs IIII), and
// rewriting the four first would strand the five-symbol.
func Canonicalize(ordered string) string {
	s := ordered

	for _, t := range tiers {
		run := strings.Repeat(string(t.unit), 5)
		for strings.Contains(s, run) {
			s = Order(strings.Replace(s, run, string(t.five), 1))
		}
		pair := string(t.five) + string(t.five)
		for strings.Contains(s, pair) {
			s = Order(strings.Replace(s, pair, string(t.next), 1))
		}
	}

	for _, t := range tiers {
		nine := string(t.five) + strings.Repeat(string(t.unit), 4)
		if strings.Contains(s, nine) {
			s = strings.Replace(s, nine, string(t.unit)+string(t.next), 1)
			continue // nine consumed the tier's five and units
		}
		four := strings.Repeat(string(t.unit), 4)
		s = strings.Replace(s, four, string(t.unit)+string(t.five), 1)
	}

	return s
}
