package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	"github.com/lgbarn/fen-extract-go/internal/errors"
)

// Unbounded marks a counter bound that is not constrained.
const Unbounded = ^uint(0)

// ActiveColourMatcher matches positions where the given side has the move.
type ActiveColourMatcher struct {
	colour chess.Colour
}

// NewActiveColour creates a matcher for the side to move.
func NewActiveColour(colour chess.Colour) *ActiveColourMatcher {
	return &ActiveColourMatcher{colour: colour}
}

// Match implements PositionMatcher.
func (m *ActiveColourMatcher) Match(pos chess.Position) bool {
	return pos.ToMove == m.colour
}

// Name implements PositionMatcher.
func (m *ActiveColourMatcher) Name() string {
	return fmt.Sprintf("ActiveColour(%v)", m.colour)
}

// EnPassantMatcher matches positions with an en-passant target square.
type EnPassantMatcher struct{}

// NewEnPassant creates a matcher for en-passant availability.
func NewEnPassant() *EnPassantMatcher {
	return &EnPassantMatcher{}
}

// Match implements PositionMatcher.
func (m *EnPassantMatcher) Match(pos chess.Position) bool {
	return pos.EnPassant
}

// Name implements PositionMatcher.
func (m *EnPassantMatcher) Name() string {
	return "EnPassant"
}

// HalfMoveBounds matches positions whose half-move clock lies in
// [Min, Max]. Use Unbounded for an open upper bound.
type HalfMoveBounds struct {
	min, max uint
}

// NewHalfMoveBounds creates a matcher for the half-move clock range.
func NewHalfMoveBounds(min, max uint) *HalfMoveBounds {
	return &HalfMoveBounds{min: min, max: max}
}

// Match implements PositionMatcher.
func (m *HalfMoveBounds) Match(pos chess.Position) bool {
	return pos.HalfMoves >= m.min && pos.HalfMoves <= m.max
}

// Name implements PositionMatcher.
func (m *HalfMoveBounds) Name() string {
	return boundsName("HalfMoves", m.min, m.max)
}

// FullMoveBounds matches positions whose full-move number lies in
// [Min, Max]. Use Unbounded for an open upper bound.
type FullMoveBounds struct {
	min, max uint
}

// NewFullMoveBounds creates a matcher for the full-move number range.
func NewFullMoveBounds(min, max uint) *FullMoveBounds {
	return &FullMoveBounds{min: min, max: max}
}

// Match implements PositionMatcher.
func (m *FullMoveBounds) Match(pos chess.Position) bool {
	return pos.FullMoves >= m.min && pos.FullMoves <= m.max
}

// Name implements PositionMatcher.
func (m *FullMoveBounds) Name() string {
	return boundsName("FullMoves", m.min, m.max)
}

func boundsName(label string, min, max uint) string {
	if max == Unbounded {
		return fmt.Sprintf("%s[%d..]", label, min)
	}
	return fmt.Sprintf("%s[%d..%d]", label, min, max)
}

// PieceCountBounds matches positions whose total piece count lies in
// [Min, Max].
type PieceCountBounds struct {
	min, max int
}

// NewPieceCountBounds creates a matcher for the total piece count range.
func NewPieceCountBounds(min, max int) *PieceCountBounds {
	return &PieceCountBounds{min: min, max: max}
}

// Match implements PositionMatcher.
func (m *PieceCountBounds) Match(pos chess.Position) bool {
	count := pos.PieceCount()
	return count >= m.min && count <= m.max
}

// Name implements PositionMatcher.
func (m *PieceCountBounds) Name() string {
	return fmt.Sprintf("PieceCount[%d..%d]", m.min, m.max)
}

// ParsePieceRange parses a piece-count range specification of the form
// "lo:hi", such as "2:10". Both bounds are inclusive.
func ParsePieceRange(spec string) (lo, hi int, err error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 {
		return 0, 0, errors.Wrapf(errors.ErrInvalidConfig, "piece range %q is not of the form lo:hi", spec)
	}

	lo, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrapf(errors.ErrInvalidConfig, "piece range lower bound %q", parts[0])
	}
	hi, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errors.Wrapf(errors.ErrInvalidConfig, "piece range upper bound %q", parts[1])
	}

	if lo < 0 || hi < lo {
		return 0, 0, errors.Wrapf(errors.ErrInvalidConfig, "piece range %q is empty", spec)
	}
	return lo, hi, nil
}

// CastlingMatcher matches positions whose castling rights cover the
// required rights for each side.
type CastlingMatcher struct {
	white chess.CastlingRights
	black chess.CastlingRights
}

// NewCastling creates a matcher requiring at least the given rights.
func NewCastling(white, black chess.CastlingRights) *CastlingMatcher {
	return &CastlingMatcher{white: white, black: black}
}

// Match implements PositionMatcher.
func (m *CastlingMatcher) Match(pos chess.Position) bool {
	return pos.WhiteCastling.Includes(m.white) && pos.BlackCastling.Includes(m.black)
}

// Name implements PositionMatcher.
func (m *CastlingMatcher) Name() string {
	return fmt.Sprintf("Castling(%v:%v)", m.white, m.black)
}

// ParseCastlingSpec parses a castling requirement such as "KQkq" or
// "Kq" into per-side rights. Letters accumulate: "KQ" and "QK" both
// yield BothSides for white. "-" imposes no requirement.
func ParseCastlingSpec(spec string) (white, black chess.CastlingRights, err error) {
	if spec == "-" {
		return chess.NoCastling, chess.NoCastling, nil
	}

	for _, c := range spec {
		switch c {
		case 'K':
			white = addRight(white, chess.KingSide)
		case 'Q':
			white = addRight(white, chess.QueenSide)
		case 'k':
			black = addRight(black, chess.KingSide)
		case 'q':
			black = addRight(black, chess.QueenSide)
		default:
			return chess.NoCastling, chess.NoCastling,
				errors.Wrapf(errors.ErrInvalidConfig, "castling spec %q has invalid character %q", spec, c)
		}
	}
	return white, black, nil
}

// addRight accumulates a single castling right into a rights set.
// Unlike the FEN field decoder, repeated or reordered letters can only
// widen the set.
func addRight(current, add chess.CastlingRights) chess.CastlingRights {
	if current == add || current == chess.BothSides {
		return current
	}
	if current == chess.NoCastling {
		return add
	}
	return chess.BothSides
}

// ParseColour parses an active-colour specification, "w" or "b".
func ParseColour(spec string) (chess.Colour, error) {
	switch spec {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, errors.Wrapf(errors.ErrInvalidConfig, "active colour %q is not w or b", spec)
	}
}
