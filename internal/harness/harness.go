package harness

import (
	"fmt"

	"github.com/roach88/rome/internal/roman"
)

// Run executes a scenario and returns its result.
//
// Every case runs against a fresh adder built from the scenario's
// configuration. Run fails (returns a non-nil error) only when the
// scenario itself is unusable — e.g. an unknown symbols restriction;
// case mismatches are reported through the Result.
func Run(scenario *Scenario) (*Result, error) {
	adder, err := newAdder(scenario)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	for i, c := range scenario.Cases {
		cr := runCase(adder, c)
		result.Cases = append(result.Cases, cr)
		if !cr.Pass {
			result.AddError(describeMismatch(i, c, cr))
		}
	}
	return result, nil
}

// newAdder builds the adder for a scenario's configuration.
func newAdder(scenario *Scenario) (*roman.Adder, error) {
	var opts []roman.Option
	if scenario.Symbols != "" {
		runes := []rune(scenario.Symbols)
		if len(runes) != 1 {
			return nil, fmt.Errorf("scenario %s: symbols must be a single symbol, got %q", scenario.Name, scenario.Symbols)
		}
		set, err := roman.UpTo(runes[0])
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		opts = append(opts, roman.WithSymbols(set))
	}
	if scenario.Unicode {
		opts = append(opts, roman.WithUnicodeForms())
	}
	return roman.New(opts...), nil
}

// runCase executes one addition and grades it against the expectation.
func runCase(adder *roman.Adder, c Case) CaseResult {
	cr := CaseResult{Augend: c.Augend, Addend: c.Addend}

	sum, err := adder.Add(c.Augend, c.Addend)
	if err != nil {
		cr.ErrorCode = string(roman.ErrorCode(err))
		cr.Pass = c.WantError != "" && cr.ErrorCode == c.WantError
		return cr
	}

	cr.Sum = sum
	cr.Pass = c.Want != "" && sum == c.Want
	return cr
}

// describeMismatch renders a human-readable mismatch for Result.Errors.
func describeMismatch(i int, c Case, cr CaseResult) string {
	expected := c.Want
	if c.WantError != "" {
		expected = "error " + c.WantError
	}
	actual := cr.Sum
	if cr.ErrorCode != "" {
		actual = "error " + cr.ErrorCode
	}
	return fmt.Sprintf("cases[%d] %s + %s: expected %s, got %s", i, c.Augend, c.Addend, expected, actual)
}
