package chess

// Position is a complete decoded FEN record: the board grid plus the
// five bookkeeping fields. It is a plain value with no setters; decode
// a new one rather than mutating an existing one. Equality between two
// positions is structural.
type Position struct {
	// The piece grid from the placement field.
	Board Board

	// Who has the next move.
	ToMove Colour

	// Castling entitlement per side.
	WhiteCastling CastlingRights
	BlackCastling CastlingRights

	// Is an en-passant capture available? If so, EPTarget holds the
	// target square as emitted by the coordinate converter.
	EnPassant bool
	EPTarget  Coord

	// The half-move clock since the last pawn move or capture.
	HalfMoves uint

	// The full-move number, starting at 1.
	FullMoves uint
}

// Equal reports whether two positions are structurally identical.
func (p Position) Equal(other Position) bool {
	return p == other
}

// PieceCount returns the number of occupied squares on the board.
func (p Position) PieceCount() int {
	return p.Board.PieceCount()
}

// EPName returns the algebraic name of the en-passant target, or "-"
// when no target is set.
func (p Position) EPName() string {
	if !p.EnPassant {
		return "-"
	}
	return p.EPTarget.Name()
}
