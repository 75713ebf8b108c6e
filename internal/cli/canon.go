package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/rome/internal/roman"
)

// CanonResult is the success payload of the canon command.
type CanonResult struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
}

// NewCanonCommand creates the canon command.
func NewCanonCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canon <numeral>",
		Short: "Canonicalize a Roman numeral",
		Long: `Rewrite a Roman numeral into canonical form.

Sloppy but in-alphabet spellings are contracted: IIIII becomes V,
VIIII becomes IX, DCCCC becomes CM. Canonical input is returned
unchanged.

Example:
  rome canon DCCCCLXXXXVIIII`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanon(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCanon(opts *RootOptions, numeral string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	adder, err := opts.newAdder()
	if err != nil {
		return WrapExitError(ExitCommandError, "building adder", err)
	}

	canonical, err := adder.Canon(numeral)
	if err != nil {
		if outErr := formatter.Error(string(roman.ErrorCode(err)), err.Error(), inputDetails(err)); outErr != nil {
			return WrapExitError(ExitCommandError, "writing error output", outErr)
		}
		return WrapExitError(ExitFailure, "invalid input", err)
	}

	if outErr := formatter.Result(canonical, CanonResult{Input: numeral, Canonical: canonical}); outErr != nil {
		return WrapExitError(ExitCommandError, "writing output", outErr)
	}
	return nil
}
