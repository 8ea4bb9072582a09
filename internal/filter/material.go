package filter

import (
	"fmt"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	"github.com/lgbarn/fen-extract-go/internal/errors"
	"github.com/lgbarn/fen-extract-go/internal/processing"
)

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	white      [chess.NumPieces]int
	black      [chess.NumPieces]int
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces).
// Use uppercase for white, lowercase for black.
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn.
// In exact mode the position must hold exactly the listed material;
// otherwise the listed material is a minimum.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
	}
	if err := mm.parsePattern(pattern); err != nil {
		return nil, err
	}
	return mm, nil
}

// parsePattern parses a material pattern like "QR:qrr".
func (mm *MaterialMatcher) parsePattern(pattern string) error {
	white, black := pattern, ""
	for i, c := range pattern {
		if c == ':' {
			white, black = pattern[:i], pattern[i+1:]
			break
		}
	}

	for _, c := range white {
		piece, ok := whitePatternPiece(c)
		if !ok {
			return errors.Wrapf(errors.ErrInvalidConfig, "material pattern %q: %q is not a white piece letter", pattern, c)
		}
		mm.white[piece]++
	}
	for _, c := range black {
		piece, ok := blackPatternPiece(c)
		if !ok {
			return errors.Wrapf(errors.ErrInvalidConfig, "material pattern %q: %q is not a black piece letter", pattern, c)
		}
		mm.black[piece]++
	}
	return nil
}

func whitePatternPiece(c rune) (chess.Piece, bool) {
	switch c {
	case 'K':
		return chess.King, true
	case 'Q':
		return chess.Queen, true
	case 'R':
		return chess.Rook, true
	case 'B':
		return chess.Bishop, true
	case 'N':
		return chess.Knight, true
	case 'P':
		return chess.Pawn, true
	}
	return chess.Empty, false
}

func blackPatternPiece(c rune) (chess.Piece, bool) {
	switch c {
	case 'k':
		return chess.King, true
	case 'q':
		return chess.Queen, true
	case 'r':
		return chess.Rook, true
	case 'b':
		return chess.Bishop, true
	case 'n':
		return chess.Knight, true
	case 'p':
		return chess.Pawn, true
	}
	return chess.Empty, false
}

// Match implements PositionMatcher.
func (mm *MaterialMatcher) Match(pos chess.Position) bool {
	s := processing.Summarize(pos)

	if mm.exactMatch {
		return mm.exactMaterialMatch(s)
	}
	return mm.minimalMaterialMatch(s)
}

// exactMaterialMatch checks that each side holds exactly the specified
// material, with no pieces beyond it.
func (mm *MaterialMatcher) exactMaterialMatch(s processing.Summary) bool {
	for piece := chess.Pawn; piece < chess.NumPieces; piece++ {
		if s.Counts[chess.White][piece] != mm.white[piece] {
			return false
		}
		if s.Counts[chess.Black][piece] != mm.black[piece] {
			return false
		}
	}
	return true
}

// minimalMaterialMatch checks that at least the specified pieces exist.
func (mm *MaterialMatcher) minimalMaterialMatch(s processing.Summary) bool {
	for piece := chess.Pawn; piece < chess.NumPieces; piece++ {
		if s.Counts[chess.White][piece] < mm.white[piece] {
			return false
		}
		if s.Counts[chess.Black][piece] < mm.black[piece] {
			return false
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

// Name implements PositionMatcher.
func (mm *MaterialMatcher) Name() string {
	mode := "min"
	if mm.exactMatch {
		mode = "exact"
	}
	return fmt.Sprintf("Material(%s %s)", mode, mm.pattern)
}
