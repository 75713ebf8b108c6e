package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and captures both streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestAddCommand_Text(t *testing.T) {
	out, _, err := execute(t, "add", "XIV", "XXVIII")
	require.NoError(t, err)
	assert.Equal(t, "XLII\n", out)
}

func TestAddCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "add", "II", "II", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "IV", data["sum"])
	assert.Equal(t, "II", data["augend"])
}

func TestAddCommand_InvalidInput(t *testing.T) {
	out, _, err := execute(t, "add", "I", "Z")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "UNKNOWN_SYMBOL")
}

func TestAddCommand_InvalidInputJSON(t *testing.T) {
	out, _, err := execute(t, "add", "Z", "I", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNKNOWN_SYMBOL", resp.Error.Code)
}

func TestAddCommand_SymbolRestriction(t *testing.T) {
	out, _, err := execute(t, "add", "IX", "I", "--symbols", "X")
	require.NoError(t, err)
	assert.Equal(t, "X\n", out)

	out, _, err = execute(t, "add", "L", "I", "--symbols", "X")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "UNSUPPORTED_SYMBOL")
}

func TestAddCommand_Unicode(t *testing.T) {
	out, _, err := execute(t, "add", "Ⅸ", "Ⅰ", "--unicode")
	require.NoError(t, err)
	assert.Equal(t, "X\n", out)
}

func TestAddCommand_WrongArity(t *testing.T) {
	_, _, err := execute(t, "add", "I")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidateCommand_MixedResults(t *testing.T) {
	out, _, err := execute(t, "validate", "MCMXCIV", "XYZ")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ok")
	assert.Contains(t, lines[0], "MCMXCIV")
	assert.Contains(t, lines[1], "invalid")
	assert.Contains(t, lines[1], "UNKNOWN_SYMBOL")
}

func TestValidateCommand_AllValid(t *testing.T) {
	out, _, err := execute(t, "validate", "I", "V", "MMXXVI")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "ok"))
}

func TestValidateCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "validate", "IIX", "Q", "--format", "json")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status) // the command ran; validity is in the payload

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, data["valid"])
	results, ok := data["results"].([]interface{})
	require.True(t, ok)
	require.Len(t, results, 2)
	first, ok := results[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, first["valid"]) // IIX is in-alphabet, membership is all we check
}

func TestCanonCommand(t *testing.T) {
	out, _, err := execute(t, "canon", "DCCCCLXXXXVIIII")
	require.NoError(t, err)
	assert.Equal(t, "CMXCIX\n", out)

	out, _, err = execute(t, "canon", "MCMXCIV")
	require.NoError(t, err)
	assert.Equal(t, "MCMXCIV\n", out)
}

func TestCanonCommand_InvalidInput(t *testing.T) {
	out, _, err := execute(t, "canon", "ZZZ")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "UNKNOWN_SYMBOL")
}

func TestRootCommand_RejectsBadFormat(t *testing.T) {
	_, _, err := execute(t, "add", "I", "I", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootCommand_RejectsBadSymbols(t *testing.T) {
	_, _, err := execute(t, "add", "I", "I", "--symbols", "Q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --symbols")

	_, _, err = execute(t, "add", "I", "I", "--symbols", "XL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single symbol")
}

func TestVerboseLogsGoToStderr(t *testing.T) {
	out, errOut, err := execute(t, "add", "I", "I", "--format", "json", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, errOut, "adding")

	// Stdout stays parseable JSON.
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
}
