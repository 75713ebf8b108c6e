package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/rome/internal/roman"
)

// AddResult is the success payload of the add command.
type AddResult struct {
	Augend string `json:"augend"`
	Addend string `json:"addend"`
	Sum    string `json:"sum"`
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <augend> <addend>",
		Short: "Add two Roman numerals",
		Long: `Add two Roman numerals and print their canonical sum.

The sum is computed symbolically: subtractive pairs are expanded,
the operands concatenated, sorted by symbol weight, and contracted
back into canonical form. No integer conversion happens anywhere.

Example:
  rome add XIV XXVIII`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runAdd(opts *RootOptions, augend, addend string, cmd *cobra.Command) error {
	formatter := opts.newFormatter(cmd)

	adder, err := opts.newAdder()
	if err != nil {
		return WrapExitError(ExitCommandError, "building adder", err)
	}

	formatter.VerboseLog("adding %q + %q over symbols %s", augend, addend, opts.Symbols)

	sum, err := adder.Add(augend, addend)
	if err != nil {
		if outErr := formatter.Error(string(roman.ErrorCode(err)), err.Error(), inputDetails(err)); outErr != nil {
			return WrapExitError(ExitCommandError, "writing error output", outErr)
		}
		return WrapExitError(ExitFailure, "invalid input", err)
	}

	if outErr := formatter.Result(sum, AddResult{Augend: augend, Addend: addend, Sum: sum}); outErr != nil {
		return WrapExitError(ExitCommandError, "writing output", outErr)
	}
	return nil
}
