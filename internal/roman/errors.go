package roman

import (
	"errors"
	"fmt"
)

// InputError is the single failure mode of the adder. Every rejected
// input — wrong value type, empty numeral, unknown or unsupported
// symbol — surfaces as an *InputError with a stable code.
//
// InputError includes structured fields for diagnostics.
type InputError struct {
	// Code identifies the rejection category.
	Code InputErrorCode

	// Message is a human-readable description.
	Message string

	// Arg names the offending argument ("augend", "addend", "numeral").
	Arg string

	// Symbol is the offending rune, when the rejection is per-symbol.
	Symbol string

	// Position is the rune index of Symbol in the desimplified input.
	// Zero-based; meaningless unless Symbol is set.
	Position int
}

// InputErrorCode categorizes input rejections.
type InputErrorCode string

const (
	// ErrCodeNotText indicates the argument was not a text value.
	ErrCodeNotText InputErrorCode = "NOT_TEXT"

	// ErrCodeEmpty indicates an empty numeral string.
	ErrCodeEmpty InputErrorCode = "EMPTY_NUMERAL"

	// ErrCodeUnknownSymbol indicates a rune outside the full alphabet.
	ErrCodeUnknownSymbol InputErrorCode = "UNKNOWN_SYMBOL"

	// ErrCodeUnsupportedSymbol indicates a known symbol outside the
	// currently active SymbolSet.
	ErrCodeUnsupportedSymbol InputErrorCode = "UNSUPPORTED_SYMBOL"
)

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("%s: %s (arg=%s, symbol=%s, pos=%d)", e.Code, e.Message, e.Arg, e.Symbol, e.Position)
	}
	if e.Arg != "" {
		return fmt.Sprintf("%s: %s (arg=%s)", e.Code, e.Message, e.Arg)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInputError reports whether err is (or wraps) an *InputError.
// Uses errors.As to handle wrapped errors.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// ErrorCode extracts the InputErrorCode from an error.
// Returns "" if the error is not an *InputError.
func ErrorCode(err error) InputErrorCode {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ""
}

// NewNotTextError creates an InputError for a non-string value.
func NewNotTextError(arg string, value any) *InputError {
	return &InputError{
		Code:    ErrCodeNotText,
		Message: fmt.Sprintf("expected a numeral string, got %T", value),
		Arg:     arg,
	}
}

// NewEmptyError creates an InputError for an empty numeral.
func NewEmptyError(arg string) *InputError {
	return &InputError{
		Code:    ErrCodeEmpty,
		Message: "numeral must not be empty",
		Arg:     arg,
	}
}

// NewUnknownSymbolError creates an InputError for a rune outside the
// full alphabet.
func NewUnknownSymbolError(arg string, sym rune, pos int) *InputError {
	return &InputError{
		Code:     ErrCodeUnknownSymbol,
		Message:  "not a roman symbol",
		Arg:      arg,
		Symbol:   string(sym),
		Position: pos,
	}
}

// NewUnsupportedSymbolError creates an InputError for a known symbol
// outside the active set.
func NewUnsupportedSymbolError(arg string, sym rune, pos int, set SymbolSet) *InputError {
	return &InputError{
		Code:     ErrCodeUnsupportedSymbol,
		Message:  fmt.Sprintf("symbol not in active set %s", set.Symbols()),
		Arg:      arg,
		Symbol:   string(sym),
		Position: pos,
	}
}
