// Package scan turns input streams into FEN candidate lines with
// source and line tracking.
package scan

import (
	"bufio"
	"io"
	"strings"
)

// Item is one FEN candidate line read from an input stream.
type Item struct {
	Source string // input name (file path or "stdin")
	Line   int    // 1-based line number in the source
	Text   string // the line as handed to the decoder
}

// Scanner reads FEN candidate lines from a stream. Whitespace-only
// lines and lines whose first non-space character is '#' are skipped;
// a trailing carriage return is stripped. The emitted text is otherwise
// untouched, so a line with leading spaces still reaches the decoder
// verbatim.
type Scanner struct {
	scanner *bufio.Scanner
	source  string
	line    int
}

// NewScanner creates a scanner over r. The source name is carried into
// every emitted item and into error reports.
func NewScanner(r io.Reader, source string) *Scanner {
	return &Scanner{
		scanner: bufio.NewScanner(r),
		source:  source,
	}
}

// Next returns the next candidate line. The second return value is
// false when the stream is exhausted; check Err afterwards.
func (s *Scanner) Next() (Item, bool) {
	for s.scanner.Scan() {
		s.line++
		text := strings.TrimSuffix(s.scanner.Text(), "\r")

		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return Item{Source: s.source, Line: s.line, Text: text}, true
	}
	return Item{}, false
}

// Err returns the first error encountered while reading, if any.
func (s *Scanner) Err() error {
	return s.scanner.Err()
}

// Source returns the input name the scanner was created with.
func (s *Scanner) Source() string {
	return s.source
}

// ReadAll collects every candidate line from r.
func ReadAll(r io.Reader, source string) ([]Item, error) {
	s := NewScanner(r, source)
	var items []Item
	for {
		item, ok := s.Next()
		if !ok {
			break
		}
		items = append(items, item)
	}
	return items, s.Err()
}
