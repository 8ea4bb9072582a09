package chess

// Board is the 8x8 piece grid decoded from the placement field of a FEN
// record. It is indexed [rankGroup][withinRank]: the first rank group of
// the placement field fills row 0. The zero value is the all-empty
// board, which is exactly what the placement decoder relies on when it
// skips over digit runs.
type Board [BoardSize][BoardSize]Square

// At returns the square content at the given row and column. Indices
// outside the grid yield the empty square.
func (b *Board) At(row, col int) Square {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Square{}
	}
	return b[row][col]
}

// PieceCount returns the number of occupied squares.
func (b *Board) PieceCount() int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b[row][col].IsEmpty() {
				count++
			}
		}
	}
	return count
}

// CountOf returns the number of squares holding the given piece kind in
// the given colour.
func (b *Board) CountOf(colour Colour, piece Piece) int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := b[row][col]
			if !sq.IsEmpty() && sq.Piece == piece && sq.Colour == colour {
				count++
			}
		}
	}
	return count
}
