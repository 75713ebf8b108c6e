package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rome/internal/roman"
)

// ValidationResult holds the outcome for one numeral.
type ValidationResult struct {
	Numeral string    `json:"numeral"`
	Valid   bool      `json:"valid"`
	Error   *CLIError `json:"error,omitempty"`
}

// ValidateResult is the payload of the validate command.
type ValidateResult struct {
	Valid   bool               `json:"valid"`
	Results []ValidationResult `json:"results"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <numeral>...",
		Short: "Validate Roman numerals against the active symbol set",
		Long: `Validate one or more Roman numerals against the active symbol set.

Each numeral is checked independently; the command reports every
outcome and exits non-zero if any numeral is invalid.

Example:
  rome validate MCMXCIV IIX --symbols M`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, numerals []string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	adder, err := opts.newAdder()
	if err != nil {
		return WrapExitError(ExitCommandError, "building adder", err)
	}

	result := ValidateResult{Valid: true}
	for _, numeral := range numerals {
		formatter.VerboseLog("validating %q", numeral)
		vr := ValidationResult{Numeral: numeral, Valid: true}
		if err := adder.Validate(numeral); err != nil {
			vr.Valid = false
			vr.Error = &CLIError{
				Code:    string(roman.ErrorCode(err)),
				Message: err.Error(),
				Details: inputDetails(err),
			}
			result.Valid = false
		}
		result.Results = append(result.Results, vr)
	}

	text := renderValidationText(result)
	if outErr := formatter.Result(text, result); outErr != nil {
		return WrapExitError(ExitCommandError, "writing output", outErr)
	}

	if !result.Valid {
		return NewExitError(ExitFailure, "one or more numerals are invalid")
	}
	return nil
}

// renderValidationText renders one line per numeral for text output.
func renderValidationText(result ValidateResult) string {
	text := ""
	for i, vr := range result.Results {
		if i > 0 {
			text += "\n"
		}
		if vr.Valid {
			text += fmt.Sprintf("ok      %s", vr.Numeral)
		} else {
			text += fmt.Sprintf("invalid %s (%s)", vr.Numeral, vr.Error.Code)
		}
	}
	return text
}
