package fen

import (
	"fmt"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	"github.com/lgbarn/fen-extract-go/internal/errors"
)

// convertCoordinates maps an algebraic square such as "e3" to a
// zero-based coordinate pair. Only the first two characters are
// consulted; anything after them is ignored. The file letter must be a
// lowercase 'a'..'h' and maps to 0..7; the row is eight minus the rank
// digit and must land inside the grid. "e3" yields {4, 5}.
func convertCoordinates(s string) (chess.Coord, error) {
	if len(s) < 2 {
		return chess.Coord{}, fmt.Errorf("coordinate %q too short: %w", s, errors.ErrInvalidCoordinates)
	}

	file := s[0]
	if file < 'a' || file > 'h' {
		return chess.Coord{}, fmt.Errorf("invalid file in %q: %w", s, errors.ErrInvalidCoordinates)
	}

	rank := s[1]
	if rank < '0' || rank > '9' {
		return chess.Coord{}, fmt.Errorf("invalid rank in %q: %w", s, errors.ErrInvalidCoordinates)
	}
	row := chess.BoardSize - int(rank-'0')
	if row < 0 || row >= chess.BoardSize {
		return chess.Coord{}, fmt.Errorf("rank out of range in %q: %w", s, errors.ErrInvalidCoordinates)
	}

	return chess.Coord{File: int(file - 'a'), Row: row}, nil
}
