package roman

import "golang.org/x/text/unicode/norm"

// Argument names used in InputError diagnostics.
const (
	ArgAugend  = "augend"
	ArgAddend  = "addend"
	ArgNumeral = "numeral"
)

// Adder computes symbolic sums over a fixed SymbolSet. The default
// (New with no options) accepts the full alphabet. Adder carries no
// mutable state and is safe for concurrent use.
type Adder struct {
	symbols      SymbolSet
	unicodeForms bool
}

// Option configures an Adder.
type Option func(*Adder)

// WithSymbols restricts the active alphabet. Validation always checks
// against whatever set is active, so restricting the set widens the
// rejection surface, never the algorithm.
func WithSymbols(set SymbolSet) Option {
	return func(a *Adder) { a.symbols = set }
}

// WithUnicodeForms accepts the Unicode roman-numeral code points
// (U+2160..U+216F, e.g. Ⅸ) by NFKC-folding inputs into their ASCII
// spellings before the pipeline runs. Lowercase forms fold to
// lowercase ASCII and are still rejected by validation.
func WithUnicodeForms() Option {
	return func(a *Adder) { a.unicodeForms = true }
}

// New creates an Adder. With no options it accepts all seven symbols
// and plain ASCII input only.
func New(opts ...Option) *Adder {
	a := &Adder{symbols: Full()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Add returns the canonical numeral for the sum of augend and addend.
//
// Each input is independently desimplified and validated, then the
// expanded strings are concatenated, ordered, and canonicalized. The
// result represents exactly the arithmetic sum of the two inputs and
// contains no further-contractible run.
//
// The only failure mode is *InputError.
func (a *Adder) Add(augend, addend string) (string, error) {
	expAugend, err := a.prepare(ArgAugend, augend)
	if err != nil {
		return "", err
	}
	expAddend, err := a.prepare(ArgAddend, addend)
	if err != nil {
		return "", err
	}

	// Post-expansion both operands are pure additive runs, so the sum
	// is their concatenation; only the display order is not yet
	// canonical.
	return Canonicalize(Order(expAugend + expAddend)), nil
}

// AddValues is Add over dynamically typed arguments. Any non-string
// value is rejected with NOT_TEXT; strings follow the Add contract.
func (a *Adder) AddValues(augend, addend any) (string, error) {
	augendText, err := textValue(ArgAugend, augend)
	if err != nil {
		return "", err
	}
	addendText, err := textValue(ArgAddend, addend)
	if err != nil {
		return "", err
	}
	return a.Add(augendText, addendText)
}

// Canon normalizes a single numeral to canonical form: a sloppy but
// in-alphabet spelling such as "IIIII" or "VIIII" comes back as "V"
// and "IX". Canonical input comes back unchanged.
func (a *Adder) Canon(numeral string) (string, error) {
	expanded, err := a.prepare(ArgNumeral, numeral)
	if err != nil {
		return "", err
	}
	return Canonicalize(Order(expanded)), nil
}

// Validate checks a single numeral against the active set without
// computing anything. Returns nil or an *InputError.
func (a *Adder) Validate(numeral string) error {
	_, err := a.prepare(ArgNumeral, numeral)
	return err
}

// prepare runs the per-input stages: optional NFKC folding,
// desimplification, validation. Returns the expanded additive form.
func (a *Adder) prepare(arg, s string) (string, error) {
	if a.unicodeForms {
		s = norm.NFKC.String(s)
	}
	expanded := Desimplify(s, a.symbols)
	if err := validateNumeral(arg, expanded, a.symbols); err != nil {
		return "", err
	}
	return expanded, nil
}

// textValue narrows a dynamic value to a string or rejects it.
func textValue(arg string, v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	default:
		return "", NewNotTextError(arg, v)
	}
}

// defaultAdder backs the package-level convenience functions.
var defaultAdder = New()

// Add is Adder.Add over the full alphabet.
func Add(augend, addend string) (string, error) {
	return defaultAdder.Add(augend, addend)
}

// AddValues is Adder.AddValues over the full alphabet.
func AddValues(augend, addend any) (string, error) {
	return defaultAdder.AddValues(augend, addend)
}
