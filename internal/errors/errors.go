// Package errors provides sentinel errors and error types for the
// fen-extract tool. It defines the closed set of decode failure kinds
// and structured error types that preserve context while allowing
// error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decode failure kinds. Every error returned
// by the FEN decoder unwraps to exactly one of the first three, so
// callers can branch exhaustively with errors.Is().
var (
	// ErrMalformedFEN indicates a structurally broken FEN record: too
	// few fields, a bad placement character, a bad active colour, or a
	// bad castling character.
	ErrMalformedFEN = errors.New("invalid FEN")

	// ErrInvalidCoordinates indicates an algebraic coordinate outside
	// a1..h8, as produced by the en-passant field.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrInvalidNumber indicates a move counter that does not parse as
	// an unsigned base-10 integer.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FieldError wraps a decode failure with the FEN field it came from and
// the offending token. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type FieldError struct {
	Err   error  // The underlying sentinel
	Field string // FEN field name ("placement", "active colour", ...)
	Token string // The token that failed to decode
}

// Error returns a formatted error message including the field context.
func (e *FieldError) Error() string {
	if e.Field == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "decode error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s field %q: %v", e.Field, e.Token, e.Err)
	}
	return fmt.Sprintf("%s field %q", e.Field, e.Token)
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the FieldError wrapper.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// LineError wraps an error with input-stream context: the source name,
// the 1-based line number, and the raw line. The driver uses it when
// reporting rejected lines.
type LineError struct {
	Err    error  // The underlying error
	Source string // Input name (file path or "stdin")
	Line   int    // 1-based line number
	Input  string // The raw input line
}

// Error returns a formatted error message with location context.
func (e *LineError) Error() string {
	loc := e.Source
	if loc == "" {
		loc = "input"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	return loc
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
