package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/roach88/rome/internal/roman"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Symbols string // highest supported symbol, e.g. "X" for {I,V,X}
	Unicode bool   // accept Unicode roman-numeral code points
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the rome CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rome",
		Short: "Symbolic Roman-numeral arithmetic",
		Long:  "Add, validate, and canonicalize Roman numerals without ever leaving the symbolic domain.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			// Fail early on a bad --symbols value; commands build the
			// adder from the same flag.
			if _, err := opts.symbolSet(); err != nil {
				return err
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Symbols, "symbols", "M", "highest supported symbol (I, V, X, L, C, D or M)")
	cmd.PersistentFlags().BoolVar(&opts.Unicode, "unicode", false, "accept Unicode roman-numeral code points (U+2160..U+216F)")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewCanonCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// symbolSet resolves the --symbols flag into a roman.SymbolSet.
func (o *RootOptions) symbolSet() (roman.SymbolSet, error) {
	runes := []rune(o.Symbols)
	if len(runes) != 1 {
		return roman.SymbolSet{}, fmt.Errorf("invalid --symbols %q: expected a single symbol", o.Symbols)
	}
	set, err := roman.UpTo(runes[0])
	if err != nil {
		return roman.SymbolSet{}, fmt.Errorf("invalid --symbols %q: %w", o.Symbols, err)
	}
	return set, nil
}

// newAdder builds the adder configured by the global flags.
func (o *RootOptions) newAdder() (*roman.Adder, error) {
	set, err := o.symbolSet()
	if err != nil {
		return nil, err
	}
	romanOpts := []roman.Option{roman.WithSymbols(set)}
	if o.Unicode {
		romanOpts = append(romanOpts, roman.WithUnicodeForms())
	}
	return roman.New(romanOpts...), nil
}

// newFormatter builds the per-invocation output formatter. JSON output
// carries a fresh trace id for correlation.
func (o *RootOptions) newFormatter(cmd *cobra.Command) *OutputFormatter {
	f := &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
	if o.Format == "json" {
		f.TraceID = uuid.NewString()
	}
	return f
}

// inputDetails extracts the structured fields of an *InputError for
// the details payload.
func inputDetails(err error) map[string]interface{} {
	var ie *roman.InputError
	if !errors.As(err, &ie) {
		return nil
	}
	details := map[string]interface{}{"arg": ie.Arg}
	if ie.Symbol != "" {
		details["symbol"] = ie.Symbol
		details["position"] = ie.Position
	}
	return details
}
