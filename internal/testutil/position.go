package testutil

import (
	"testing"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	"github.com/lgbarn/fen-extract-go/internal/fen"
)

// ParseTestPosition decodes a FEN string and reports whether decoding
// succeeded. Use this for tests where a decode failure is an acceptable
// outcome.
func ParseTestPosition(record string) (chess.Position, bool) {
	pos, err := fen.Parse(record)
	if err != nil {
		return chess.Position{}, false
	}
	return pos, true
}

// MustParsePosition decodes a FEN string and returns the position.
// It calls t.Fatal if decoding fails. Use this in test setup where a
// decode failure should abort the test.
func MustParsePosition(t *testing.T, record string) chess.Position {
	t.Helper()
	pos, err := fen.Parse(record)
	if err != nil {
		t.Fatalf("failed to parse test position %q: %v", record, err)
	}
	return pos
}

// MustParsePositions decodes each FEN string in turn and returns the
// positions. It calls t.Fatal on the first decode failure.
func MustParsePositions(t *testing.T, records ...string) []chess.Position {
	t.Helper()
	positions := make([]chess.Position, 0, len(records))
	for _, record := range records {
		positions = append(positions, MustParsePosition(t, record))
	}
	return positions
}
