package roman

import "fmt"

// Alphabet lists every symbol the system knows, in descending weight
// order. This is the display order of a canonical numeral.
const Alphabet = "MDCLXVI"

// weights maps each known symbol to its fixed quantity.
var weights = map[rune]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// tier groups the three symbols involved in one rung of the
// contraction ladder: five units carry into the five-symbol, two
// five-symbols carry into the next tier's unit.
type tier struct {
	unit rune // I, X, C
	five rune // V, L, D
	next rune // X, C, M
}

// tiers is ordered low to high. Canonicalization walks it upward so a
// carry at one tier can feed the contraction at the next.
var tiers = []tier{
	{'I', 'V', 'X'},
	{'X', 'L', 'C'},
	{'C', 'D', 'M'},
}

// Weight returns the quantity of a known symbol.
// The second return is false for runes outside the alphabet.
func Weight(r rune) (int, bool) {
	w, ok := weights[r]
	return w, ok
}

// SymbolSet is the active alphabet: the set of symbols the adder
// currently accepts. It is a plain value with no mutable state.
//
// The set is always weight-downward-closed: supporting X implies
// supporting V and I. That matches how the alphabet is meant to widen
// incrementally ({I,V} -> {I,V,X} -> ... -> all seven).
type SymbolSet struct {
	maxWeight int
}

// Full returns the set of all seven symbols, I through M.
func Full() SymbolSet {
	return SymbolSet{maxWeight: weights['M']}
}

// UpTo returns the set supporting every symbol of weight less than or
// equal to sym's weight. UpTo('X') supports {I, V, X}.
func UpTo(sym rune) (SymbolSet, error) {
	w, ok := weights[sym]
	if !ok {
		return SymbolSet{}, fmt.Errorf("unknown roman symbol %q", string(sym))
	}
	return SymbolSet{maxWeight: w}, nil
}

// Supports reports whether r is inside the active alphabet.
func (s SymbolSet) Supports(r rune) bool {
	w, ok := weights[r]
	return ok && w <= s.maxWeight
}

// Symbols returns the supported symbols in descending weight order,
// for use in diagnostics.
func (s SymbolSet) Symbols() string {
	out := make([]rune, 0, len(Alphabet))
	for _, r := range Alphabet {
		if s.Supports(r) {
			out = append(out, r)
		}
	}
	return string(out)
}
