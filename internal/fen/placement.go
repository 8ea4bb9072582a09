package fen

import (
	"unicode"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	"github.com/lgbarn/fen-extract-go/internal/errors"
)

// PieceFromChar converts a FEN placement letter to a square content.
// Uppercase letters are white pieces, lowercase black. The second
// return value is false for characters outside the piece table.
func PieceFromChar(c rune) (chess.Square, bool) {
	var piece chess.Piece
	switch c {
	case 'K', 'k':
		piece = chess.King
	case 'Q', 'q':
		piece = chess.Queen
	case 'R', 'r':
		piece = chess.Rook
	case 'N', 'n':
		piece = chess.Knight
	case 'B', 'b':
		piece = chess.Bishop
	case 'P', 'p':
		piece = chess.Pawn
	default:
		return chess.Square{}, false
	}

	colour := chess.White
	if unicode.IsLower(c) {
		colour = chess.Black
	}
	return chess.Square{Piece: piece, Colour: colour}, true
}

// parsePlacement decodes the piece placement field into the board
// grid. The walk keeps a rank-group index ('/' advances it and resets
// the within-rank index) and a within-rank index; digit runs skip
// squares without writing, since the zero-value grid already holds
// empties. Bounds are checked only when a piece is written; digit or
// '/' runs past the edge are not themselves an error.
func parsePlacement(field string) (chess.Board, error) {
	var board chess.Board
	row, col := 0, 0

	for _, c := range field {
		switch {
		case c == '/':
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			sq, ok := PieceFromChar(c)
			if !ok {
				return chess.Board{}, &errors.FieldError{Err: errors.ErrMalformedFEN, Field: "placement", Token: string(c)}
			}
			if row >= chess.BoardSize || col >= chess.BoardSize {
				return chess.Board{}, &errors.FieldError{Err: errors.ErrMalformedFEN, Field: "placement", Token: field}
			}
			board[row][col] = sq
			col++
		}
	}

	return board, nil
}
