package vobj

import (
	"errors"
	"fmt"
)

// Malformed logical line errors.
var (
	// ErrDanglingContinuation is a folded continuation line with no
	// logical line before it.
	ErrDanglingContinuation = errors.New("continuation line with no preceding line")
	// ErrMissingName is a content line starting with ";" or ":".
	ErrMissingName = errors.New("missing property name")
	// ErrMissingValueDelimiter is a content line with no unquoted ":".
	ErrMissingValueDelimiter = errors.New(`missing ":" value delimiter`)
	// ErrMissingParamEqual is a parameter without "=" after its name.
	ErrMissingParamEqual = errors.New(`missing "=" after parameter name`)
	// ErrMissingParamName is a ";" immediately followed by "=".
	ErrMissingParamName = errors.New("missing parameter name")
	// ErrEmptyParamValue is a bare NAME= with no value.
	ErrEmptyParamValue = errors.New("empty parameter value")
	// ErrUnterminatedQuote is a quoted parameter value with no closing quote.
	ErrUnterminatedQuote = errors.New("unterminated quoted parameter value")
)

// Structural nesting errors.
var (
	// ErrEndWithoutBegin is an END line with no open component.
	ErrEndWithoutBegin = errors.New("END without matching BEGIN")
	// ErrEndMismatch is an END line naming a different component than
	// the innermost open BEGIN.
	ErrEndMismatch = errors.New("END name does not match open BEGIN")
	// ErrUnterminatedComponent is end-of-input with a component still open.
	ErrUnterminatedComponent = errors.New("unterminated component at end of input")
	// ErrPropertyOutsideComponent is a property line before any BEGIN.
	ErrPropertyOutsideComponent = errors.New("property outside of any component")
	// ErrMissingComponentName is a BEGIN or END line with an empty value.
	ErrMissingComponentName = errors.New("BEGIN/END with no component name")
	// ErrUnexpectedRootComponent is a top-level component whose name
	// does not match the format profile.
	ErrUnexpectedRootComponent = errors.New("unexpected root component")
)

// LineError wraps a parse error with the 1-based source line it was
// detected on. It unwraps to the underlying error so callers can use
// errors.Is against the sentinel errors above.
type LineError struct {
	Line int
	Err  error
}

// NewLineError wraps err with a source line number.
func NewLineError(line int, err error) *LineError {
	return &LineError{Line: line, Err: err}
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
