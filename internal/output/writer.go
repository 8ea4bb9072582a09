// Package output provides result writers for processed FEN lines.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	ferrors "github.com/lgbarn/fen-extract-go/internal/errors"
)

// Result is one processed input line with its decode outcome. Pos is
// meaningful only when Err is nil.
type Result struct {
	Index     int    // position in the input ordering, 0-based
	Source    string // input name (file path or "stdin")
	Line      int    // 1-based line number in the source
	Input     string // the raw input line
	Pos       chess.Position
	Err       error // nil when the line decoded
	Matched   bool  // filter verdict, meaningful when Err is nil
	Duplicate bool
}

// ResultWriter is the interface for writing processed lines to output.
// Different implementations handle different output formats.
type ResultWriter interface {
	// WriteResult writes a single processed line to the output.
	WriteResult(res Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter echoes the raw input line of each result it is given.
// Routing (matched only, duplicates suppressed) is the caller's job.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WriteResult writes the raw input line.
func (tw *TextWriter) WriteResult(res Result) error {
	if _, err := tw.w.WriteString(res.Input); err != nil {
		return err
	}
	return tw.w.WriteByte('\n')
}

// Flush flushes buffered lines to the underlying writer.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

// Close flushes the writer. The underlying stream stays open; the
// caller owns it.
func (tw *TextWriter) Close() error {
	return tw.Flush()
}

// RejectWriter records undecodable lines with their diagnostics. Each
// reject becomes a '#' diagnostic line followed by the raw input, so a
// reject file can be fed back through the scanner.
type RejectWriter struct {
	w *bufio.Writer
}

// NewRejectWriter creates a new reject writer.
func NewRejectWriter(w io.Writer) *RejectWriter {
	return &RejectWriter{w: bufio.NewWriter(w)}
}

// WriteResult writes the diagnostic comment and the raw input line.
func (rw *RejectWriter) WriteResult(res Result) error {
	if _, err := fmt.Fprintf(rw.w, "# %s:%d: %v\n", res.Source, res.Line, res.Err); err != nil {
		return err
	}
	if _, err := rw.w.WriteString(res.Input); err != nil {
		return err
	}
	return rw.w.WriteByte('\n')
}

// Flush flushes buffered rejects to the underlying writer.
func (rw *RejectWriter) Flush() error {
	return rw.w.Flush()
}

// Close flushes the writer.
func (rw *RejectWriter) Close() error {
	return rw.Flush()
}

// ErrorKind names the decode failure kind of an error: "malformed",
// "coordinates" or "number" for the decoder's closed error set, "error"
// for anything else, and "" for nil.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ferrors.ErrInvalidCoordinates):
		return "coordinates"
	case errors.Is(err, ferrors.ErrInvalidNumber):
		return "number"
	case errors.Is(err, ferrors.ErrMalformedFEN):
		return "malformed"
	default:
		return "error"
	}
}
