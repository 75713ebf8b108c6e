package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	path := writeScenario(t, `
name: sample
description: "a sample"
symbols: X
cases:
  - augend: I
    addend: I
    want: II
  - augend: I
    addend: Z
    want_error: UNKNOWN_SYMBOL
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", scenario.Name)
	assert.Equal(t, "X", scenario.Symbols)
	require.Len(t, scenario.Cases, 2)
	assert.Equal(t, "II", scenario.Cases[0].Want)
	assert.Equal(t, "UNKNOWN_SYMBOL", scenario.Cases[1].WantError)
}

func TestLoadScenario_RejectsUnknownFields(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "field typo"
case:
  - augend: I
    addend: I
    want: II
`)

	_, err := LoadScenario(path)
	assert.Error(t, err, "strict decoding must reject the 'case:' typo")
}

func TestLoadScenario_RequiresName(t *testing.T) {
	path := writeScenario(t, `
description: "nameless"
cases:
  - augend: I
    addend: I
    want: II
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenario_RequiresExpectation(t *testing.T) {
	path := writeScenario(t, `
name: no-expectation
description: "case without want"
cases:
  - augend: I
    addend: I
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want or want_error")
}

func TestLoadScenario_RejectsConflictingExpectations(t *testing.T) {
	path := writeScenario(t, `
name: conflicting
description: "both want and want_error"
cases:
  - augend: I
    addend: I
    want: II
    want_error: EMPTY_NUMERAL
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenarios_SortedByFileName(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"additions-basic", "invalid-input", "narrow-alphabet", "unicode-forms"}, names)
}

func TestLoadScenarios_EmptyDir(t *testing.T) {
	_, err := LoadScenarios(t.TempDir())
	assert.Error(t, err)
}
