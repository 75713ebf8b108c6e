// Package roman implements symbolic addition of Roman-numeral strings.
//
// The adder never converts a numeral to its integer value. It computes
// sums entirely in the symbolic domain, as a pipeline of five pure
// string transforms:
//
//  1. Desimplify: expand subtractive pairs (IV, IX, XL, XC, CD, CM)
//     into their additive runs, per input, before concatenation.
//  2. Validate: every remaining rune must belong to the active symbol
//     set. Both arguments are validated, symmetrically.
//  3. Concatenate: post-expansion, additive numerals are order-free
//     multisets of symbols, so plain concatenation is the sum.
//  4. Order: stable sort into descending weight order (M > D > C > L >
//     X > V > I).
//  5. Canonicalize: contraction ladder from the lowest tier upward.
//     Run-of-five carries first (IIIII -> V, VV -> X, ...), then the
//     subtractive rewrites, nine-form before four-form (VIIII -> IX,
//     IIII -> IV, and analogues up the ladder).
//
// CRITICAL PATTERNS:
//
// Declarative symbol table:
// The supported alphabet is a single SymbolSet value, not a chain of
// per-symbol conditionals. Validation is one uniform membership pass,
// and the set can be restricted (UpTo) to exercise a smaller alphabet
// without touching the pipeline.
//
// Single failure mode:
// Every rejection is an *InputError carrying a stable code. No other
// error kind escapes a correct call to Add.
//
// Determinism:
// All operations are pure functions of their arguments. There is no
// shared mutable state; concurrent calls need no coordination.
package roman
