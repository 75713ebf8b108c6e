package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AllCasesPass(t *testing.T) {
	scenario := &Scenario{
		Name:        "inline",
		Description: "inline scenario",
		Cases: []Case{
			{Augend: "II", Addend: "II", Want: "IV"},
			{Augend: "I", Addend: "Z", WantError: "UNKNOWN_SYMBOL"},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Cases, 2)
	assert.Equal(t, "IV", result.Cases[0].Sum)
	assert.Equal(t, "UNKNOWN_SYMBOL", result.Cases[1].ErrorCode)
}

func TestRun_ReportsMismatches(t *testing.T) {
	scenario := &Scenario{
		Name:        "mismatch",
		Description: "wrong expectations",
		Cases: []Case{
			{Augend: "I", Addend: "I", Want: "III"},
			{Augend: "I", Addend: "I", WantError: "UNKNOWN_SYMBOL"},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "expected III, got II")
	assert.False(t, result.Cases[0].Pass)
	assert.False(t, result.Cases[1].Pass)
}

func TestRun_SymbolRestriction(t *testing.T) {
	scenario := &Scenario{
		Name:        "restricted",
		Description: "I..V only",
		Symbols:     "V",
		Cases: []Case{
			{Augend: "II", Addend: "III", Want: "V"},
			{Augend: "X", Addend: "I", WantError: "UNSUPPORTED_SYMBOL"},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass)
}

func TestRun_BadSymbolRestriction(t *testing.T) {
	scenario := &Scenario{
		Name:        "broken",
		Description: "unknown restriction",
		Symbols:     "Q",
		Cases:       []Case{{Augend: "I", Addend: "I", Want: "II"}},
	}

	_, err := Run(scenario)
	assert.Error(t, err)
}
