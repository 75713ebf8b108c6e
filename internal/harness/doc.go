// Package harness provides conformance testing for the Roman-numeral
// adder.
//
// The harness loads addition scenarios from YAML, executes every case
// against a fresh adder, and compares results — either inline against
// the scenario's expectations, or as a golden snapshot of the full
// run.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	symbols: X          # optional: highest supported symbol
//	unicode: true       # optional: accept Unicode numeral code points
//	cases:
//	  - augend: II
//	    addend: III
//	    want: V
//	  - augend: I
//	    addend: Z
//	    want_error: UNKNOWN_SYMBOL
//
// Every case specifies exactly one of want (the expected canonical
// sum) or want_error (the expected roman.InputErrorCode).
//
// # Deterministic Testing
//
// A scenario run is a pure function of the scenario file: the adder
// has no state, no clock, and no I/O, so the same file always produces
// a byte-identical snapshot. Golden files live in testdata/golden and
// are regenerated with:
//
//	go test ./internal/harness -update
package harness
