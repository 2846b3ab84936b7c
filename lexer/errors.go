package lexer

import "fmt"

// ScanError is the base error type for all lexer errors. Tokenization is
// all-or-nothing, so any ScanError means no tokens were produced.
type ScanError struct {
	Message   string
	Remaining string // unconsumed input, starting at the offending text
	Cause     error
}

func (e *ScanError) Error() string {
	if e.Remaining != "" {
		return fmt.Sprintf("%s at %q", e.Message, e.Remaining)
	}
	return e.Message
}

func (e *ScanError) Unwrap() error { return e.Cause }

// UnrecognizedCharError reports a character that no token can start with.
type UnrecognizedCharError struct{ ScanError }

// MalformedNumberError reports a numeric literal that does not split into a
// single whole/frac pair (a second decimal point, or a digit run that
// overflows int).
type MalformedNumberError struct{ ScanError }
