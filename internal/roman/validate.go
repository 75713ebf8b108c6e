package roman

// validateNumeral checks a desimplified numeral against the active
// set. arg names the argument for diagnostics.
//
// Rejections, in order of detection:
//   - empty string -> EMPTY_NUMERAL
//   - rune outside the full alphabet -> UNKNOWN_SYMBOL
//   - known rune outside the active set -> UNSUPPORTED_SYMBOL
//
// Validation runs after Desimplify so the membership pass is uniform:
// by then a valid numeral is a plain run of symbols with no pair
// syntax left to special-case.
func validateNumeral(arg, s string, set SymbolSet) error {
	if s == "" {
		return NewEmptyError(arg)
	}
	for i, r := range []rune(s) {
		if _, known := weights[r]; !known {
			return NewUnknownSymbolError(arg, r, i)
		}
		if !set.Supports(r) {
			return NewUnsupportedSymbolError(arg, r, i, set)
		}
	}
	return nil
}
